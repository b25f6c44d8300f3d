// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package websocket pushes change cues to connected browsers.
//
// The hub fans out two message types: favorites_changed (relayed from
// the process event bus, so favorites panels across tabs stay in sync)
// and catalog_updated (after a dataset ingest). Messages are cues, not
// state transfers; clients re-read through the REST API on receipt.
package websocket
