// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package services

import (
	"context"
)

// ContextRunner matches websocket.Hub's Run method.
type ContextRunner interface {
	Run(ctx context.Context) error
}

// WebSocketHubService supervises the cue-push hub. Hub.Run already
// follows the suture contract, so this only names it for the logs.
type WebSocketHubService struct {
	hub ContextRunner
}

// NewWebSocketHubService wraps a hub for supervision.
func NewWebSocketHubService(hub ContextRunner) *WebSocketHubService {
	return &WebSocketHubService{hub: hub}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.Run(ctx)
}

// String identifies the service in supervisor logs.
func (w *WebSocketHubService) String() string {
	return "websocket-hub"
}
