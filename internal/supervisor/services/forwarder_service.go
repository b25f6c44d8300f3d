// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package services

import (
	"context"

	"github.com/scoutdeck/scoutdeck/internal/events"
)

// ChangeForwarder matches websocket.Hub's bus-relay method.
type ChangeForwarder interface {
	ForwardFavoritesChanges(ctx context.Context, bus *events.Bus) error
}

// ForwarderService relays favorites change events from the process bus
// to websocket clients. Supervised separately from the hub so a relay
// failure resubscribes without dropping connections.
type ForwarderService struct {
	forwarder ChangeForwarder
	bus       *events.Bus
}

// NewForwarderService wraps the hub-bus relay for supervision.
func NewForwarderService(forwarder ChangeForwarder, bus *events.Bus) *ForwarderService {
	return &ForwarderService{forwarder: forwarder, bus: bus}
}

// Serve implements suture.Service.
func (f *ForwarderService) Serve(ctx context.Context) error {
	return f.forwarder.ForwardFavoritesChanges(ctx, f.bus)
}

// String identifies the service in supervisor logs.
func (f *ForwarderService) String() string {
	return "favorites-forwarder"
}
