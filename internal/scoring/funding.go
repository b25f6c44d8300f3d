// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fundingPattern extracts the leading decimal number and optional unit
// suffix from a free-text money string. Currency symbols and noise before
// the number are ignored; commas inside the number are stripped.
var fundingPattern = regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]+)?)\s*(b|m|k|亿|万)?`)

// Unit multipliers relative to millions (the canonical denomination).
const (
	billionToMillion  = 1000.0
	thousandToMillion = 1.0 / 1000.0
	yiToMillion       = 100.0       // 亿 = 100 million
	wanToMillion      = 1.0 / 100.0 // 万 = 10 thousand
)

// ParseFundingAmount extracts a funding amount from a free-text money
// string and returns it denominated in millions. Supported unit suffixes
// are b, m, k (case-insensitive) and the Chinese 亿 / 万. Unmatched or
// non-finite input returns 0.
//
//	ParseFundingAmount("$35M")   == 35
//	ParseFundingAmount("$1.2B")  == 1200
//	ParseFundingAmount("¥3亿")   == 300
//	ParseFundingAmount("")       == 0
func ParseFundingAmount(raw string) float64 {
	m := fundingPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}

	switch strings.ToLower(m[2]) {
	case "b":
		value *= billionToMillion
	case "m":
		// Already million-denominated.
	case "k":
		value *= thousandToMillion
	case "亿":
		value *= yiToMillion
	case "万":
		value *= wanToMillion
	default:
		// No unit: treat as millions, matching crawler conventions.
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
