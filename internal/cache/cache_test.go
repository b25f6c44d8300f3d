// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("facets", map[string]int{"wearable": 3})

	v, ok := c.Get("facets")
	if !ok {
		t.Fatal("expected hit")
	}
	if v.(map[string]int)["wearable"] != 3 {
		t.Fatalf("value = %v", v)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry should hit")
	}

	base = base.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry should miss")
	}

	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Fatalf("evictions = %d, want 1", stats.Evictions)
	}
	if stats.Keys != 0 {
		t.Fatalf("keys = %d, want 0", stats.Keys)
	}
}

func TestCacheClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Fatal("cleared entry should miss")
	}
	if c.Stats().Keys != 0 {
		t.Fatalf("keys = %d after clear", c.Stats().Keys)
	}
}

func TestCacheStatsCounters(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("absent")

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}
