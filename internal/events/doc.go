// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package events provides the process-wide change broadcast bus.
//
// The favorites store publishes one message after every mutating
// operation; any number of independent read-only subscribers (count
// badges, list panels, the websocket hub) treat a received message purely
// as a cue to re-read the full store. There are no partial or delta
// updates and no delivery transaction: a missed cue is corrected by the
// next one, and last writer wins.
//
// The bus is Watermill's in-process gochannel pubsub behind a small
// wrapper, keeping the transport swappable without touching domain code.
package events
