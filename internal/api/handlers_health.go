// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"net/http"
	"time"
)

// healthStatus is the GET /health payload.
type healthStatus struct {
	Status        string  `json:"status"`
	Environment   string  `json:"environment"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Products      int     `json:"products"`
	Decks         int     `json:"decks"`
	Favorites     int     `json:"favorites"`
	WSClients     int     `json:"ws_clients"`
}

// Health reports overall status and headline counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	products, blogs := h.favorites.Counts()
	wsClients := 0
	if h.hub != nil {
		wsClients = h.hub.ClientCount()
	}

	respondData(w, http.StatusOK, healthStatus{
		Status:        "ok",
		Environment:   h.cfg.Server.Environment,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Products:      h.catalog.Len(),
		Decks:         h.decks.Len(),
		Favorites:     products + blogs,
		WSClients:     wsClients,
	})
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe. The server serves an empty
// catalog fine, so readiness tracks liveness until a dependency that
// can actually fail is added.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"products": h.catalog.Len(),
	})
}

// Performance returns sliding-window per-endpoint latency stats.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	if h.perfMon == nil {
		respondData(w, http.StatusOK, map[string]interface{}{"endpoints": nil})
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"endpoints": h.perfMon.Stats(),
	})
}
