// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package api exposes the catalog, deck, and favorites operations over
// HTTP using the chi router. Every response uses a common JSON envelope;
// the websocket endpoint upgrades into the cue-push hub.
package api
