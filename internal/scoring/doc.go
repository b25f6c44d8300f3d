// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package scoring computes heat, freshness, funding, and composite scores
// for a single product record.
//
// All functions are pure and side-effect free. Unparseable domain values
// (funding strings, dates) degrade to zero rather than raising errors, so
// a scorer never fails on crawler output.
//
// # Composite Model
//
// The composite score blends three signals under configurable weights:
//
//	composite = 0.65*heat + 0.30*freshness + 0.05*fundingBonus
//
//   - Heat: max of the raw engagement metrics and a tier-derived floor,
//     clamped to [0,100].
//   - Freshness: exponential decay with a 21-day half-life; a product is
//     worth exactly 50 freshness points at age == half-life.
//   - Funding bonus: log10-scaled parsed funding, clamped to [0,100].
//
// Weights and the half-life are configuration, not literals; see Config.
package scoring
