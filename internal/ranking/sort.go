// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package ranking

import (
	"sort"
	"time"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
)

// SortMode selects the catalog ordering.
type SortMode string

// Supported sort modes.
const (
	SortComposite SortMode = "composite"
	SortTrending  SortMode = "trending"
	SortRecency   SortMode = "recency"
	SortFunding   SortMode = "funding"
)

// ParseSortMode maps a raw mode string to a SortMode. The legacy aliases
// "score" and "date" map to trending and recency; anything unrecognized
// falls back to composite.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortComposite, SortTrending, SortRecency, SortFunding:
		return SortMode(raw)
	case "score":
		return SortTrending
	case "date":
		return SortRecency
	default:
		return SortComposite
	}
}

// Pipeline sorts product collections using a shared scorer.
type Pipeline struct {
	scorer *scoring.Scorer
}

// NewPipeline creates a ranking pipeline over the given scorer.
func NewPipeline(scorer *scoring.Scorer) *Pipeline {
	if scorer == nil {
		scorer = scoring.NewScorer(scoring.Config{})
	}
	return &Pipeline{scorer: scorer}
}

// Scorer returns the pipeline's scorer.
func (pl *Pipeline) Scorer() *scoring.Scorer {
	return pl.scorer
}

// Sort orders products in place by the given mode. Sorting is stable:
// exactly-equal keys preserve input order.
//
//   - composite: descending composite score
//   - trending: descending heat, ties broken by newer date
//   - recency: descending date, ties broken by higher heat
//   - funding: descending parsed funding amount
func (pl *Pipeline) Sort(products []catalog.Product, mode SortMode, now time.Time) {
	switch mode {
	case SortTrending:
		sort.SliceStable(products, func(i, j int) bool {
			hi, hj := pl.scorer.Heat(&products[i]), pl.scorer.Heat(&products[j])
			if hi != hj {
				return hi > hj
			}
			return scoring.ProductDate(&products[i]).After(scoring.ProductDate(&products[j]))
		})
	case SortRecency:
		sort.SliceStable(products, func(i, j int) bool {
			di, dj := scoring.ProductDate(&products[i]), scoring.ProductDate(&products[j])
			if !di.Equal(dj) {
				return di.After(dj)
			}
			return pl.scorer.Heat(&products[i]) > pl.scorer.Heat(&products[j])
		})
	case SortFunding:
		sort.SliceStable(products, func(i, j int) bool {
			return scoring.ParseFundingAmount(products[i].FundingTotal) >
				scoring.ParseFundingAmount(products[j].FundingTotal)
		})
	default: // SortComposite and anything unrecognized
		sort.SliceStable(products, func(i, j int) bool {
			return pl.scorer.Composite(&products[i], now) > pl.scorer.Composite(&products[j], now)
		})
	}
}
