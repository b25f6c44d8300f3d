// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package favorites implements the versioned, migration-aware store of
// liked products and blog posts.
//
// # Schema
//
// The current schema (version 3) is one JSON blob:
//
//	{"version": 3, "products": [entry...], "blogs": [entry...]}
//
// where each entry is {key, saved_at, item}: the dedup fingerprint, the
// like timestamp, and a sanitized display snapshot of the entity (never a
// live reference). At most one entry exists per key per kind; entries are
// replaced whole, never partially updated.
//
// # Legacy Compatibility
//
// Older deployments persisted favorites under differently shaped blobs
// (plain key arrays, object arrays with inconsistent field names). The
// legacy adapter isolates that parsing: lookups fall back to legacy keys
// at read time, mutations mirror the fingerprint into the legacy key
// array so still-running legacy code paths stay consistent, and a
// one-shot migration on cold read synthesizes v3 entries from whatever
// the heuristics can extract. Legacy entries the heuristics cannot map
// are counted and surfaced as a "needs re-save" hint instead of being
// silently dropped or merged.
//
// # Change Broadcast
//
// Every mutating operation broadcasts one change event on the process
// bus; subscribers re-read the full store on receipt.
package favorites
