// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCompressionGzipsWhenAccepted(t *testing.T) {
	payload := strings.Repeat("scoutdeck ", 200)
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck
		w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	decoded, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(decoded) != payload {
		t.Fatal("decompressed body does not round-trip")
	}
}

func TestCompressionSkipsWithoutAcceptHeader(t *testing.T) {
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck
		w.Write([]byte("plain"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Fatal("response should not be compressed")
	}
	if rec.Body.String() != "plain" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestPrometheusMetricsPreservesResponse(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/decks", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestPerformanceMonitorStats(t *testing.T) {
	pm := NewPerformanceMonitor(10)
	for i, d := range []int64{10, 20, 30, 40, 100} {
		pm.Record(RequestMetric{
			Path:       "/api/v1/products",
			Method:     "GET",
			DurationMS: d,
			StatusCode: 200,
			Timestamp:  time.Now().Add(time.Duration(i) * time.Millisecond),
		})
	}
	pm.Record(RequestMetric{Path: "/api/v1/decks", Method: "POST", DurationMS: 5, StatusCode: 201})

	stats := pm.Stats()
	if len(stats) != 2 {
		t.Fatalf("stats = %d endpoints, want 2", len(stats))
	}
	top := stats[0]
	if top.Path != "GET /api/v1/products" {
		t.Fatalf("busiest endpoint = %q", top.Path)
	}
	if top.RequestCount != 5 {
		t.Fatalf("request count = %d, want 5", top.RequestCount)
	}
	if top.AvgDuration != 40 {
		t.Fatalf("avg = %f, want 40", top.AvgDuration)
	}
	if top.P50Duration != 30 {
		t.Fatalf("p50 = %d, want 30", top.P50Duration)
	}
	if top.MaxDuration != 100 {
		t.Fatalf("max = %d, want 100", top.MaxDuration)
	}
}

func TestPerformanceMonitorWindowBound(t *testing.T) {
	pm := NewPerformanceMonitor(3)
	for i := 0; i < 10; i++ {
		pm.Record(RequestMetric{Path: "/x", Method: "GET", DurationMS: int64(i)})
	}

	stats := pm.Stats()
	if stats[0].RequestCount != 3 {
		t.Fatalf("window = %d entries, want 3", stats[0].RequestCount)
	}
}
