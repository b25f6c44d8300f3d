// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"time"

	"github.com/scoutdeck/scoutdeck/internal/cache"
	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/config"
	"github.com/scoutdeck/scoutdeck/internal/deck"
	"github.com/scoutdeck/scoutdeck/internal/favorites"
	"github.com/scoutdeck/scoutdeck/internal/middleware"
	"github.com/scoutdeck/scoutdeck/internal/ranking"
	"github.com/scoutdeck/scoutdeck/internal/websocket"
)

// Handler holds the services the HTTP endpoints operate on.
type Handler struct {
	catalog   *catalog.Catalog
	pipeline  *ranking.Pipeline
	decks     *deck.Manager
	favorites *favorites.Store
	hub       *websocket.Hub
	cfg       *config.Config
	perfMon   *middleware.PerformanceMonitor
	views     *cache.Cache
	startTime time.Time
}

// viewCacheTTL bounds staleness of cached derived views. Ingests clear
// the cache immediately; the TTL only covers in-place file reloads.
const viewCacheTTL = 30 * time.Second

// NewHandler wires the endpoint dependencies.
func NewHandler(
	cat *catalog.Catalog,
	pipeline *ranking.Pipeline,
	decks *deck.Manager,
	favs *favorites.Store,
	hub *websocket.Hub,
	cfg *config.Config,
	perfMon *middleware.PerformanceMonitor,
) *Handler {
	return &Handler{
		catalog:   cat,
		pipeline:  pipeline,
		decks:     decks,
		favorites: favs,
		hub:       hub,
		cfg:       cfg,
		perfMon:   perfMon,
		views:     cache.New(viewCacheTTL),
		startTime: time.Now(),
	}
}
