// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package supervisor builds the suture v4 supervision tree.
//
// The tree has two layers: messaging (websocket hub, change-event
// forwarder, catalog reloader) and api (HTTP server). The split isolates
// failures; a crashing messaging service restarts without taking the
// HTTP listener down.
package supervisor
