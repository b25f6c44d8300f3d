// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/deck"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
)

// deckView is the deck state returned to clients.
type deckView struct {
	ID    string            `json:"id"`
	Stack []catalog.Product `json:"stack"`
	Stats deck.Stats        `json:"stats"`
}

// swipeResult reports one committed (or rejected) card transition.
type swipeResult struct {
	Committed bool              `json:"committed"`
	Direction deck.Direction    `json:"direction,omitempty"`
	Card      *catalog.Product  `json:"card,omitempty"`
	Stack     []catalog.Product `json:"stack"`
	Stats     deck.Stats        `json:"stats"`
}

// CreateDeck builds a new session deck from the current catalog.
func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	id, d := h.decks.Create(h.catalog.Snapshot())

	metrics.DeckBuilds.Inc()
	metrics.DeckSessions.Set(float64(h.decks.Len()))

	respondData(w, http.StatusCreated, deckView{
		ID:    id,
		Stack: d.Stack(),
		Stats: d.Stats(),
	})
}

// GetDeck returns the rendered stack and session stats.
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := h.decks.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown deck", nil)
		return
	}

	respondData(w, http.StatusOK, deckView{
		ID:    id,
		Stack: d.Stack(),
		Stats: d.Stats(),
	})
}

// SwipeDeck commits a programmatic swipe in the requested direction.
func (h *Handler) SwipeDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := h.decks.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown deck", nil)
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message+": "+apiErr.Details, nil)
		return
	}

	direction, _ := deck.ParseDirection(req.Direction)
	card, err := d.Swipe(direction)
	if err != nil {
		h.respondDeckError(w, err)
		return
	}

	metrics.RecordSwipe(string(direction))
	if d.State() == deck.StateExhausted {
		metrics.DeckExhaustions.Inc()
	}

	respondData(w, http.StatusOK, swipeResult{
		Committed: true,
		Direction: direction,
		Card:      &card,
		Stack:     d.Stack(),
		Stats:     d.Stats(),
	})
}

// ReleaseDeck resolves a pointer-up: commit when the drag crossed the
// threshold for its pointer kind, spring-back otherwise. Spring-backs
// return committed=false and mutate nothing.
func (h *Handler) ReleaseDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := h.decks.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown deck", nil)
		return
	}

	var req ReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message+": "+apiErr.Details, nil)
		return
	}

	drag := deck.Drag{OriginX: req.OriginX, CurrentX: req.CurrentX}
	kind := deck.PointerKind(req.Pointer)
	card, direction, committed, err := d.Release(drag, kind)
	if err != nil {
		h.respondDeckError(w, err)
		return
	}

	result := swipeResult{
		Committed: committed,
		Stack:     d.Stack(),
		Stats:     d.Stats(),
	}
	if committed {
		result.Direction = direction
		result.Card = &card
		metrics.RecordSwipe(string(direction))
		if d.State() == deck.StateExhausted {
			metrics.DeckExhaustions.Inc()
		}
	}

	respondData(w, http.StatusOK, result)
}

// ResetDeck rebuilds an exhausted deck from its remembered pool.
func (h *Handler) ResetDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := h.decks.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown deck", nil)
		return
	}

	d.Reset()
	metrics.DeckBuilds.Inc()

	respondData(w, http.StatusOK, deckView{
		ID:    id,
		Stack: d.Stack(),
		Stats: d.Stats(),
	})
}

// DeleteDeck discards a session deck.
func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.decks.Get(id); !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown deck", nil)
		return
	}

	h.decks.Remove(id)
	metrics.DeckSessions.Set(float64(h.decks.Len()))

	respondData(w, http.StatusOK, map[string]string{"deleted": id})
}

// respondDeckError maps deck sentinel errors to HTTP statuses.
// Exhaustion and in-flight commits are caller-visible states, not
// server failures.
func (h *Handler) respondDeckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deck.ErrNotBuilt):
		respondError(w, http.StatusConflict, ErrCodeConflict, "deck has not been built", nil)
	case errors.Is(err, deck.ErrExhausted):
		respondError(w, http.StatusConflict, ErrCodeConflict, "deck is exhausted", nil)
	case errors.Is(err, deck.ErrCommitInFlight):
		respondError(w, http.StatusConflict, ErrCodeConflict, "previous swipe still committing", nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "deck operation failed", err)
	}
}
