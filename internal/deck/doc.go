// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package deck implements the session-scoped adaptive swipe recommender.
//
// # State Machine
//
// A deck moves Idle -> Stacked(1..3 cards) -> Exhausted. Exhausted is
// terminal until Reset. The stack holds the rendered top-of-deck cards
// (stack[0] is active) and is refilled to three after every pop while the
// pool has candidates.
//
// # Preference Learning
//
// A right swipe adds +2 to the weight of every direction facet of the
// liked card; four or more consecutive left swipes subtract 0.5 from
// every weight (repeated-rejection down-weighting, not a single-skip
// penalty). Refill draws from the pool by weighted sampling: composite
// score plus learned direction weights plus uniform jitter, picking
// uniformly among the top six candidates so the feed stays biased toward
// preference without becoming deterministic. Weights are clamped to
// [-6, +6] so a long skip streak cannot bury a category beyond recovery.
//
// # No-Repeat Window
//
// Swiped fingerprints persist with a seven-day TTL. Build excludes any
// product whose fingerprint is in the live window; if that would empty
// the pool, the persisted set is cleared and the unfiltered list is used,
// preventing permanent starvation.
//
// # Ownership
//
// Each Deck is an explicitly owned instance created per session by the
// Manager and serializes its transitions behind a mutex; there is no
// process-wide singleton, so independent decks (and tests) run in
// parallel against their own state.
package deck
