// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/favorites"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
)

// favoritesView is the GET /favorites payload.
type favoritesView struct {
	Products []favorites.Entry `json:"products"`
	Blogs    []favorites.Entry `json:"blogs"`

	// LegacyOnly counts entries readable only through the legacy keys,
	// surfaced so the UI can hint "re-save to upgrade".
	LegacyOnly int `json:"legacy_only"`
}

// Favorites lists both favorite kinds.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, favoritesView{
		Products:   h.favorites.List(favorites.KindProduct),
		Blogs:      h.favorites.List(favorites.KindBlog),
		LegacyOnly: h.favorites.LegacyOnlyCount(),
	})
}

// FavoritesCount returns per-kind counts without the entries.
func (h *Handler) FavoritesCount(w http.ResponseWriter, r *http.Request) {
	products, blogs := h.favorites.Counts()
	respondData(w, http.StatusOK, map[string]int{
		"products": products,
		"blogs":    blogs,
		"total":    products + blogs,
	})
}

// ToggleFavorite flips one entity in or out of the store.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message+": "+apiErr.Details, nil)
		return
	}

	var favorited bool
	switch favorites.Kind(req.Kind) {
	case favorites.KindProduct:
		p := catalog.Product{
			Name:           req.Product.Name,
			Website:        req.Product.Website,
			Category:       req.Product.Category,
			Categories:     req.Product.Categories,
			DarkHorseIndex: req.Product.DarkHorseIndex,
			FundingTotal:   req.Product.FundingTotal,
		}
		favorited = h.favorites.ToggleProduct(p)
	case favorites.KindBlog:
		favorited = h.favorites.ToggleBlog(*req.Blog)
	}

	action := "remove"
	if favorited {
		action = "add"
	}
	products, blogs := h.favorites.Counts()
	metrics.RecordFavoritesMutation(req.Kind, action, products+blogs)

	respondData(w, http.StatusOK, map[string]interface{}{
		"favorited": favorited,
		"products":  products,
		"blogs":     blogs,
	})
}

// RemoveFavorite deletes a favorite by its fingerprint key. The key is
// URL-escaped by clients since fingerprints contain "::" and slashes.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "key")
	key, err := url.PathUnescape(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "malformed favorite key", err)
		return
	}
	kind := favorites.Kind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = favorites.KindProduct
	}
	if kind != favorites.KindProduct && kind != favorites.KindBlog {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "kind must be product or blog", nil)
		return
	}

	removed := h.favorites.RemoveByKey(kind, key)
	if !removed {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "favorite not found", nil)
		return
	}

	products, blogs := h.favorites.Counts()
	metrics.RecordFavoritesMutation(string(kind), "remove", products+blogs)

	respondData(w, http.StatusOK, map[string]interface{}{
		"removed":  key,
		"products": products,
		"blogs":    blogs,
	})
}
