// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package scoring

import (
	"math"
	"testing"
)

func TestParseFundingAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "dollars millions", in: "$35M", want: 35},
		{name: "dollars billions", in: "$1.2B", want: 1200},
		{name: "yuan yi", in: "¥3亿", want: 300},
		{name: "empty", in: "", want: 0},
		{name: "lowercase unit", in: "12m", want: 12},
		{name: "thousands", in: "$500K", want: 0.5},
		{name: "wan", in: "2000万", want: 20},
		{name: "commas stripped", in: "$1,250M", want: 1250},
		{name: "no unit treated as millions", in: "$40", want: 40},
		{name: "decimal without unit", in: "7.5", want: 7.5},
		{name: "surrounding text", in: "raised $35M Series B", want: 35},
		{name: "no number", in: "undisclosed", want: 0},
		{name: "negative-free garbage", in: "N/A", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFundingAmount(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseFundingAmount(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
