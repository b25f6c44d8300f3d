// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
)

// Manager owns the per-session decks. Every deck is an independent
// instance over the shared persisted store; sessions never share
// in-memory preference state.
type Manager struct {
	mu     sync.RWMutex
	decks  map[string]*Deck
	kv     kvstore.Store
	scorer *scoring.Scorer
	cfg    Config
	logger zerolog.Logger
	onLike func(catalog.Product)
}

// NewManager creates a deck manager.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(kv kvstore.Store, scorer *scoring.Scorer, cfg Config, logger zerolog.Logger) *Manager {
	return &Manager{
		decks:  make(map[string]*Deck),
		kv:     kv,
		scorer: scorer,
		cfg:    cfg,
		logger: logger,
	}
}

// SetLikeCallback registers the like handler applied to every deck
// created afterwards.
func (m *Manager) SetLikeCallback(fn func(catalog.Product)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLike = fn
}

// Create builds a new session deck over the given products and returns
// its session ID.
func (m *Manager) Create(products []catalog.Product) (string, *Deck) {
	d := New(m.kv, m.scorer, m.cfg, m.logger)

	m.mu.Lock()
	if m.onLike != nil {
		d.SetLikeCallback(m.onLike)
	}
	id := uuid.NewString()
	m.decks[id] = d
	m.mu.Unlock()

	d.Build(products)
	return id, d
}

// Get returns the deck for a session ID.
func (m *Manager) Get(id string) (*Deck, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.decks[id]
	return d, ok
}

// Remove drops a session deck.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.decks, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.decks)
}
