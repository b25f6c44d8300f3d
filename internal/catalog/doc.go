// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package catalog defines the Product record and the in-memory catalog that
// holds the externally supplied product list.
//
// Products arrive pre-fetched and pre-scored from an out-of-scope
// crawler/LLM pipeline; this package only models them, normalizes their
// identity, and hands out snapshots for ranking and discovery.
//
// # Identity
//
// A product's dedup fingerprint is "normalizedWebsite::lowercased(name)".
// Two records with the same fingerprint are the same entity for swipe-dedup
// and favoriting purposes, even if their other fields differ. Placeholder
// website values ("unknown", "n/a", empty) normalize to "" so they never
// distinguish otherwise-identical products.
package catalog
