// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package catalog

import (
	"strings"
)

// Product is one discovered product record as supplied by the upstream
// crawler/LLM pipeline. All fields except Name may be absent; consumers
// must degrade gracefully rather than fail on missing values.
type Product struct {
	// Name is the product name and is the only required field.
	Name string `json:"name"`

	// Website is the product URL. Placeholder values ("unknown", "n/a",
	// empty) mean "no website" and are normalized away, never treated as
	// a parse error.
	Website string `json:"website,omitempty"`

	// DarkHorseIndex is the 0-5 conviction tier assigned upstream.
	DarkHorseIndex int `json:"darkHorseIndex,omitempty"`

	// Heuristic engagement signals, roughly 0-100. Any may be zero/absent.
	HotScore      float64 `json:"hotScore,omitempty"`
	FinalScore    float64 `json:"finalScore,omitempty"`
	TrendingScore float64 `json:"trendingScore,omitempty"`

	// FundingTotal is a free-text money string ("$35M", "¥3亿", "1,200万").
	FundingTotal string `json:"fundingTotal,omitempty"`

	// Date fields are ISO-ish strings; any may be absent or unparseable.
	DiscoveredAt string `json:"discoveredAt,omitempty"`
	FirstSeen    string `json:"firstSeen,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`

	// Facets.
	Category         string        `json:"category,omitempty"`
	Categories       []string      `json:"categories,omitempty"`
	HardwareCategory string        `json:"hardwareCategory,omitempty"`
	UseCase          string        `json:"useCase,omitempty"`
	FormFactor       string        `json:"formFactor,omitempty"`
	InnovationTraits []string      `json:"innovationTraits,omitempty"`
	IsHardware       bool          `json:"isHardware,omitempty"`
	Extra            *ProductExtra `json:"extra,omitempty"`
}

// ProductExtra carries nested facet fields some crawler versions emit.
type ProductExtra struct {
	HardwareCategory string   `json:"hardwareCategory,omitempty"`
	UseCase          string   `json:"useCase,omitempty"`
	FormFactor       string   `json:"formFactor,omitempty"`
	InnovationTraits []string `json:"innovationTraits,omitempty"`
}

// websitePlaceholders are values that mean "no website" in crawler output.
var websitePlaceholders = map[string]bool{
	"":        true,
	"unknown": true,
	"n/a":     true,
	"na":      true,
	"none":    true,
	"-":       true,
	"null":    true,
}

// NormalizeWebsite canonicalizes a product website for fingerprinting:
// lowercase, scheme and "www." prefix stripped, trailing slashes removed.
// Placeholder values return "".
func NormalizeWebsite(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if websitePlaceholders[s] {
		return ""
	}
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimRight(s, "/")
	return s
}

// Fingerprint returns the dedup identity of a product. Two records with the
// same fingerprint are the same entity for swipe-dedup and favoriting even
// if other fields differ.
func Fingerprint(p *Product) string {
	return NormalizeWebsite(p.Website) + "::" + strings.ToLower(strings.TrimSpace(p.Name))
}
