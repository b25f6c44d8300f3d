// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200"))
	RecordAPIRequest("GET", "/api/v1/products", 200, 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200"))

	if after != before+1 {
		t.Fatalf("counter = %f, want %f", after, before+1)
	}
}

func TestRecordSwipe(t *testing.T) {
	before := testutil.ToFloat64(DeckSwipes.WithLabelValues("right"))
	RecordSwipe("right")
	RecordSwipe("right")
	after := testutil.ToFloat64(DeckSwipes.WithLabelValues("right"))

	if after != before+2 {
		t.Fatalf("counter = %f, want %f", after, before+2)
	}
}

func TestRecordFavoritesMutation(t *testing.T) {
	RecordFavoritesMutation("product", "add", 7)

	if got := testutil.ToFloat64(FavoritesCount.WithLabelValues("product")); got != 7 {
		t.Fatalf("gauge = %f, want 7", got)
	}
}

func TestGauges(t *testing.T) {
	CatalogProducts.Set(120)
	if got := testutil.ToFloat64(CatalogProducts); got != 120 {
		t.Fatalf("catalog gauge = %f, want 120", got)
	}

	DeckSessions.Inc()
	DeckSessions.Dec()
}
