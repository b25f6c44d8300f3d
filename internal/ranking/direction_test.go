// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package ranking

import (
	"testing"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
)

func TestNormalizeDirectionToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Voice Assistant", want: "voice"},
		{in: "语音助手", want: "voice"},
		{in: "AI Chip", want: "ai_chip"},
		{in: "芯片设计", want: "ai_chip"},
		{in: "Humanoid Robot", want: "robotics"},
		{in: "具身智能", want: "robotics"},
		{in: "自动驾驶", want: "driving"},
		{in: "Image Generation", want: "image"},
		{in: "Coding Assistant", want: "coding"},
		{in: "smart home hub", want: "smart_home"},
		{in: "AR Glasses", want: "wearable"},
		// Generic tokens never pollute facet counts.
		{in: "hardware", want: ""},
		{in: "Software", want: ""},
		{in: "other", want: ""},
		{in: "AI", want: ""},
		{in: "", want: ""},
		{in: "completely novel thing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeDirectionToken(tt.in); got != tt.want {
				t.Errorf("NormalizeDirectionToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDirectionTokenOrdering(t *testing.T) {
	// "robot vision chip" could match robotics, image, and ai_chip; the
	// ordered table makes ai_chip win because chip rules come first.
	if got := NormalizeDirectionToken("robot vision chip"); got != "ai_chip" {
		t.Errorf("NormalizeDirectionToken = %q, want %q", got, "ai_chip")
	}
}

func TestDirectionsOf(t *testing.T) {
	p := catalog.Product{
		Category:         "hardware", // ignored generic token
		Categories:       []string{"robotics", "ai"},
		HardwareCategory: "humanoid robot", // dedups with robotics
		UseCase:          "voice assistant",
		FormFactor:       "wearable glasses",
		InnovationTraits: []string{"autonomous driving"},
		Extra: &catalog.ProductExtra{
			UseCase: "语音交互", // dedups with voice
		},
	}

	got := DirectionsOf(&p)
	want := []string{"robotics", "voice", "wearable", "driving"}

	if len(got) != len(want) {
		t.Fatalf("DirectionsOf() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DirectionsOf()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFacetCounts(t *testing.T) {
	products := []catalog.Product{
		{Category: "robotics"},
		{Categories: []string{"robot arm"}},
		{UseCase: "voice"},
		{Category: "other"}, // contributes nothing
	}

	counts := FacetCounts(products)
	if counts["robotics"] != 2 {
		t.Errorf("counts[robotics] = %d, want 2", counts["robotics"])
	}
	if counts["voice"] != 1 {
		t.Errorf("counts[voice] = %d, want 1", counts["voice"])
	}
	if _, ok := counts[""]; ok {
		t.Error("empty token must never appear in facet counts")
	}
}
