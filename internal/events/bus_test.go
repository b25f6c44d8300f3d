// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package events

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestBusBroadcastsToAllSubscribers(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close() //nolint:errcheck // test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Two independent read-only subscribers, like a count badge and a
	// list panel.
	sub1, err := bus.SubscribeFavoritesChanged(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	sub2, err := bus.SubscribeFavoritesChanged(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sent := FavoritesChanged{
		Kind:   "product",
		Action: "add",
		Key:    "acme.ai::acme robot",
		Count:  1,
		At:     time.Now().UTC(),
	}
	bus.PublishFavoritesChanged(sent)

	for i, sub := range []<-chan FavoritesChanged{sub1, sub2} {
		select {
		case got := <-sub:
			if got.Key != sent.Key || got.Action != "add" || got.Count != 1 {
				t.Errorf("subscriber %d got %+v, want %+v", i, got, sent)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("subscriber %d timed out waiting for change event", i)
		}
	}
}

func TestBusSubscriberChannelClosesOnCancel(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close() //nolint:errcheck // test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := bus.SubscribeFavoritesChanged(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	cancel()

	select {
	case _, open := <-sub:
		if open {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel did not close after cancel")
	}
}
