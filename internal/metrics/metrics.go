// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Current number of products in the catalog",
		},
	)

	CatalogIngests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_ingests_total",
			Help: "Total number of catalog dataset replacements",
		},
	)

	// Deck Metrics
	DeckBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_builds_total",
			Help: "Total number of deck builds",
		},
	)

	DeckSwipes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_swipes_total",
			Help: "Total number of committed swipes",
		},
		[]string{"direction"}, // "left", "right"
	)

	DeckExhaustions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_exhaustions_total",
			Help: "Total number of decks swiped to exhaustion",
		},
	)

	DeckSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deck_sessions",
			Help: "Current number of live deck sessions",
		},
	)

	// Favorites Metrics
	FavoritesCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "favorites_entries",
			Help: "Current number of favorite entries",
		},
		[]string{"kind"}, // "product", "blog"
	)

	FavoritesMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_mutations_total",
			Help: "Total number of favorites mutations",
		},
		[]string{"kind", "action"}, // action: "add", "remove"
	)

	FavoritesMigrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "favorites_migrations_total",
			Help: "Total number of legacy favorites migrations performed",
		},
	)

	FavoritesLegacyOnly = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "favorites_legacy_only_entries",
			Help: "Legacy favorite entries migration could not map",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	// Storage Metrics
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_errors_total",
			Help: "Total number of key-value storage errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordSwipe records one committed swipe.
func RecordSwipe(direction string) {
	DeckSwipes.WithLabelValues(direction).Inc()
}

// RecordFavoritesMutation records one favorites add or remove and the
// resulting entry count.
func RecordFavoritesMutation(kind, action string, count int) {
	FavoritesMutations.WithLabelValues(kind, action).Inc()
	FavoritesCount.WithLabelValues(kind).Set(float64(count))
}

// StartUptimeTracking updates AppUptime once a minute until stop is
// closed.
func StartUptimeTracking(stop <-chan struct{}) {
	start := time.Now()
	AppUptime.Set(0)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				AppUptime.Set(time.Since(start).Seconds())
			case <-stop:
				return
			}
		}
	}()
}
