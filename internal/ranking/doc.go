// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package ranking filters, sorts, and paginates product collections for the
// main catalog view.
//
// # Filtering
//
// Tier filters (darkhorse/rising/other) and type filters (hardware/software)
// compose by logical AND; "all" or empty is a no-op for both.
//
// # Sorting
//
// Four modes: composite, trending, recency, funding, plus the legacy
// aliases score (trending) and date (recency). Unknown modes fall back to
// composite rather than failing the pipeline. All sorts are stable, so
// exactly-equal keys preserve input order.
//
// # Direction Facets
//
// Free-text facet values (English or Chinese) are normalized to a fixed
// canonical vocabulary by ordered substring matching; generic tokens
// ("hardware", "ai", "other", ...) are dropped so they never pollute
// facet counts or preference learning.
package ranking
