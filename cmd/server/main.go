// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package main is the Scoutdeck server entry point.
//
// Scoutdeck serves a gesture-driven discovery deck over a crawler-built
// product catalog: composite scoring, ranked browsing, per-session
// adaptive swipe decks with a persisted no-repeat window, and a
// versioned favorites store with legacy-format migration.
//
// Startup order:
//
//  1. Configuration: koanf v2 layering (defaults, config.yaml, env)
//  2. Storage: BadgerDB key-value store (in-memory when STORAGE path empty)
//  3. Event bus: watermill gochannel pubsub for change broadcasts
//  4. Domain: catalog, scorer, deck manager, favorites store
//  5. Supervision: suture v4 tree running the websocket hub, the
//     change forwarder, the optional catalog reloader, and the HTTP API
//
// The server shuts down gracefully on SIGINT/SIGTERM: the listener
// drains in-flight requests, the hub closes its clients, and Badger is
// closed last so every committed mutation is durable.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/scoutdeck/scoutdeck/internal/api"
	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/config"
	"github.com/scoutdeck/scoutdeck/internal/deck"
	"github.com/scoutdeck/scoutdeck/internal/events"
	"github.com/scoutdeck/scoutdeck/internal/favorites"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
	"github.com/scoutdeck/scoutdeck/internal/logging"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
	"github.com/scoutdeck/scoutdeck/internal/middleware"
	"github.com/scoutdeck/scoutdeck/internal/ranking"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
	"github.com/scoutdeck/scoutdeck/internal/supervisor"
	"github.com/scoutdeck/scoutdeck/internal/supervisor/services"
	ws "github.com/scoutdeck/scoutdeck/internal/websocket"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("starting scoutdeck")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	uptimeStop := make(chan struct{})
	defer close(uptimeStop)
	metrics.StartUptimeTracking(uptimeStop)

	// Storage. Empty path selects the in-memory store; swiped windows
	// and favorites then last only for the process lifetime.
	var kv kvstore.Store
	if cfg.Storage.Path == "" {
		logging.Warn().Msg("no storage path configured, state is in-memory only")
		kv = kvstore.NewMemory()
	} else {
		badger, err := kvstore.OpenBadger(cfg.Storage.Path)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("open badger store")
		}
		defer func() {
			if err := badger.Close(); err != nil {
				logging.Error().Err(err).Msg("close badger store")
			}
		}()
		kv = badger
		logging.Info().Str("path", cfg.Storage.Path).Msg("badger store opened")
	}

	bus := events.NewBus(logging.Logger())
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("close event bus")
		}
	}()

	cat := catalog.New()
	if cfg.Catalog.Path != "" {
		if err := cat.LoadFile(cfg.Catalog.Path); err != nil {
			logging.Warn().Err(err).Str("path", cfg.Catalog.Path).Msg("catalog load failed, starting empty")
		} else {
			logging.Info().Int("products", cat.Len()).Msg("catalog loaded")
		}
	}
	metrics.CatalogProducts.Set(float64(cat.Len()))

	scorer := scoring.NewScorer(cfg.Scoring)
	pipeline := ranking.NewPipeline(scorer)
	favs := favorites.New(kv, bus, logging.WithComponent("favorites"))

	decks := deck.NewManager(kv, scorer, cfg.Deck, logging.WithComponent("deck"))
	// A right swipe is a like; mirror it into favorites.
	decks.SetLikeCallback(func(p catalog.Product) {
		if favs.AddProduct(p) {
			products, blogs := favs.Counts()
			metrics.RecordFavoritesMutation(string(favorites.KindProduct), "add", products+blogs)
		}
	})

	hub := ws.NewHub()
	perfMon := middleware.NewPerformanceMonitor(1000)

	handler := api.NewHandler(cat, pipeline, decks, favs, hub, cfg, perfMon)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewForwarderService(hub, bus))
	if cfg.Catalog.Path != "" && cfg.Catalog.ReloadInterval > 0 {
		tree.AddMessagingService(services.NewCatalogReloadService(cat, hub, cfg.Catalog.Path, cfg.Catalog.ReloadInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("supervisor tree exited")
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service missed shutdown timeout")
		}
	}

	logging.Info().Msg("scoutdeck stopped")
}
