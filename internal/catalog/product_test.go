// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package catalog

import (
	"strings"
	"testing"
)

func TestNormalizeWebsite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips scheme and www", in: "https://www.example.com/", want: "example.com"},
		{name: "http scheme", in: "http://example.com", want: "example.com"},
		{name: "lowercases", in: "HTTPS://Example.COM", want: "example.com"},
		{name: "keeps path", in: "https://example.com/product", want: "example.com/product"},
		{name: "empty", in: "", want: ""},
		{name: "unknown placeholder", in: "unknown", want: ""},
		{name: "n/a placeholder", in: "N/A", want: ""},
		{name: "dash placeholder", in: "-", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWebsite(tt.in); got != tt.want {
				t.Errorf("NormalizeWebsite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := &Product{Name: "Acme Robot", Website: "https://www.acme.ai/"}
	b := &Product{Name: "ACME ROBOT", Website: "acme.ai", DarkHorseIndex: 5}

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("fingerprints differ: %q vs %q", Fingerprint(a), Fingerprint(b))
	}
	if got := Fingerprint(a); got != "acme.ai::acme robot" {
		t.Errorf("Fingerprint = %q, want %q", got, "acme.ai::acme robot")
	}

	// Placeholder website still yields a usable name-based identity.
	c := &Product{Name: "Stealth Co", Website: "unknown"}
	if got := Fingerprint(c); got != "::stealth co" {
		t.Errorf("Fingerprint = %q, want %q", got, "::stealth co")
	}
}

func TestCatalogLoadAndSnapshot(t *testing.T) {
	c := New()
	payload := `[
		{"name": "Alpha", "website": "alpha.ai", "darkHorseIndex": 5},
		{"name": "Beta", "hotScore": 77.5, "categories": ["hardware", "robotics"]}
	]`

	if err := c.Load(strings.NewReader(payload)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	snap := c.Snapshot()
	if snap[0].Name != "Alpha" || snap[0].DarkHorseIndex != 5 {
		t.Errorf("snapshot[0] = %+v, want Alpha with index 5", snap[0])
	}
	if snap[1].HotScore != 77.5 {
		t.Errorf("snapshot[1].HotScore = %f, want 77.5", snap[1].HotScore)
	}

	// Mutating the snapshot must not affect the catalog.
	snap[0].Name = "mutated"
	if c.Snapshot()[0].Name != "Alpha" {
		t.Error("snapshot mutation leaked into catalog")
	}
}

func TestCatalogLoadMalformed(t *testing.T) {
	c := New()
	if err := c.Load(strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Error("Load() with malformed JSON should return an error")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed load, want 0", c.Len())
	}
}
