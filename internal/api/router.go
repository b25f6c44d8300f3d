// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scoutdeck/scoutdeck/internal/middleware"
)

// Router assembles the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a router around an assembled handler. The middleware
// factory is built from the handler's server config.
func NewRouter(handler *Handler) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = handler.cfg.Server.CORSOrigins
	mwConfig.RateLimitRequests = handler.cfg.Server.RateLimitReqs
	mwConfig.RateLimitWindow = handler.cfg.Server.RateLimitWindow
	mwConfig.RateLimitDisabled = handler.cfg.Server.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		perfMon:       handler.perfMon,
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to every route. CORS stays global so OPTIONS
	// preflights are answered before route matching.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints get a permissive rate limit for monitoring.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.Performance)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		if router.perfMon != nil {
			r.Use(router.perfMon.Middleware)
		}

		r.Route("/products", func(r chi.Router) {
			r.With(chiMiddleware(middleware.Compression)).Get("/", router.handler.Products)
			r.Get("/facets", router.handler.ProductFacets)
			r.Post("/", router.handler.IngestProducts)
		})

		r.Route("/decks", func(r chi.Router) {
			r.Post("/", router.handler.CreateDeck)
			r.Get("/{id}", router.handler.GetDeck)
			r.Delete("/{id}", router.handler.DeleteDeck)
			r.With(router.chiMiddleware.RateLimitGesture()).Post("/{id}/swipe", router.handler.SwipeDeck)
			r.With(router.chiMiddleware.RateLimitGesture()).Post("/{id}/release", router.handler.ReleaseDeck)
			r.Post("/{id}/reset", router.handler.ResetDeck)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", router.handler.Favorites)
			r.Get("/count", router.handler.FavoritesCount)
			r.Post("/toggle", router.handler.ToggleFavorite)
			r.Delete("/{key}", router.handler.RemoveFavorite)
		})

		r.Get("/ws", router.handler.WebSocket)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
