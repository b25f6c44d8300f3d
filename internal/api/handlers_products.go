// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/logging"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
	"github.com/scoutdeck/scoutdeck/internal/ranking"
)

// rankedProduct is a catalog record with its computed composite score.
type rankedProduct struct {
	catalog.Product
	CompositeScore float64  `json:"compositeScore"`
	Tier           string   `json:"tier"`
	Directions     []string `json:"directions,omitempty"`
}

// productsPage is the GET /products payload.
type productsPage struct {
	Products []rankedProduct `json:"products"`
	Facets   map[string]int  `json:"facets"`
}

// Products lists the catalog filtered, sorted, and paginated.
// Query: tier, type, sort, page, size.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ranking.Filter{
		Tier: q.Get("tier"),
		Type: q.Get("type"),
	}
	mode := ranking.ParseSortMode(q.Get("sort"))

	page := getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	size := getIntParam(r, "size", h.cfg.API.DefaultPageSize)
	if size < 1 {
		size = h.cfg.API.DefaultPageSize
	}
	if size > h.cfg.API.MaxPageSize {
		size = h.cfg.API.MaxPageSize
	}

	now := time.Now()
	filtered := ranking.Apply(h.catalog.Snapshot(), filter)
	h.pipeline.Sort(filtered, mode, now)
	visible := ranking.Page(filtered, page, size)

	scorer := h.pipeline.Scorer()
	ranked := make([]rankedProduct, 0, len(visible))
	for i := range visible {
		p := visible[i]
		ranked = append(ranked, rankedProduct{
			Product:        p,
			CompositeScore: scorer.Composite(&p, now),
			Tier:           string(ranking.TierOf(&p)),
			Directions:     ranking.DirectionsOf(&p),
		})
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: productsPage{
			Products: ranked,
			Facets:   ranking.FacetCounts(filtered),
		},
		Metadata: Metadata{
			Timestamp:  time.Now().UTC(),
			Count:      len(ranked),
			Page:       page,
			PageSize:   size,
			TotalItems: len(filtered),
		},
	})
}

// ProductFacets returns direction facet counts over the whole catalog.
// The counts are cached; an ingest invalidates them.
func (h *Handler) ProductFacets(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.views.Get("facets"); ok {
		respondData(w, http.StatusOK, map[string]interface{}{"facets": cached})
		return
	}

	counts := ranking.FacetCounts(h.catalog.Snapshot())
	h.views.Set("facets", counts)
	respondData(w, http.StatusOK, map[string]interface{}{"facets": counts})
}

// IngestProducts replaces the catalog with a pushed dataset and cues
// connected clients to re-read.
func (h *Handler) IngestProducts(w http.ResponseWriter, r *http.Request) {
	var products []catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&products); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "body must be a JSON product array", err)
		return
	}

	h.catalog.Replace(products)
	h.views.Clear()
	metrics.CatalogProducts.Set(float64(h.catalog.Len()))
	metrics.CatalogIngests.Inc()

	if h.hub != nil {
		h.hub.BroadcastCatalogUpdated(h.catalog.Len())
	}

	logging.Info().Int("products", h.catalog.Len()).Msg("catalog ingested")
	respondData(w, http.StatusOK, map[string]int{"products": h.catalog.Len()})
}
