// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package ranking

import (
	"strings"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
)

// Tier buckets products by conviction level.
type Tier string

// Tier values, derived from darkHorseIndex.
const (
	TierDarkHorse Tier = "darkhorse" // index 4-5: high-conviction
	TierRising    Tier = "rising"    // index 2-3: early-signal
	TierOther     Tier = "other"
)

// TierOf returns the conviction tier of a product.
func TierOf(p *catalog.Product) Tier {
	switch {
	case p.DarkHorseIndex >= 4:
		return TierDarkHorse
	case p.DarkHorseIndex >= 2:
		return TierRising
	default:
		return TierOther
	}
}

// IsHardware reports whether a product is hardware: the explicit flag, the
// primary category, or a "hardware" entry in the category list.
func IsHardware(p *catalog.Product) bool {
	if p.IsHardware {
		return true
	}
	if strings.EqualFold(p.Category, "hardware") {
		return true
	}
	for _, c := range p.Categories {
		if strings.EqualFold(c, "hardware") {
			return true
		}
	}
	return false
}

// Filter selects a subset of the catalog. Zero values and "all" are no-ops.
type Filter struct {
	// Tier matches TierOf: "darkhorse", "rising", or "other".
	Tier string

	// Type is "hardware" or "software".
	Type string
}

// matches reports whether a single product passes the filter. Conditions
// compose by logical AND.
func (f Filter) matches(p *catalog.Product) bool {
	if f.Tier != "" && f.Tier != "all" && Tier(f.Tier) != TierOf(p) {
		return false
	}
	switch f.Type {
	case "hardware":
		if !IsHardware(p) {
			return false
		}
	case "software":
		if IsHardware(p) {
			return false
		}
	}
	return true
}

// Apply returns the products passing the filter, preserving input order.
func Apply(products []catalog.Product, f Filter) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for i := range products {
		if f.matches(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
