// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Topics published on the bus.
const (
	// TopicFavoritesChanged carries FavoritesChanged cues.
	TopicFavoritesChanged = "favorites.changed"
)

// FavoritesChanged is the payload broadcast after every favorites
// mutation. Subscribers re-read the store; the payload exists for logging
// and client display, not as a delta.
type FavoritesChanged struct {
	// Kind is the entity kind: "product" or "blog".
	Kind string `json:"kind"`

	// Action is "add" or "remove".
	Action string `json:"action"`

	// Key is the fingerprint of the affected entity.
	Key string `json:"key"`

	// Count is the post-mutation favorite count for the kind.
	Count int `json:"count"`

	// At is the mutation time.
	At time.Time `json:"at"`
}

// Bus is the process-wide pubsub used for change broadcasts.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger
}

// NewBus creates an in-process bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			newWatermillLogger(logger),
		),
		logger: logger.With().Str("component", "events").Logger(),
	}
}

// PublishFavoritesChanged broadcasts a favorites change cue. Publishing is
// fire-and-forget: a failed broadcast is logged, never propagated, because
// the store mutation it follows has already committed.
func (b *Bus) PublishFavoritesChanged(ev FavoritesChanged) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error().Err(err).Msg("marshal favorites change event")
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(TopicFavoritesChanged, msg); err != nil {
		b.logger.Error().Err(err).Msg("publish favorites change event")
	}
}

// SubscribeFavoritesChanged returns a channel of change cues. The channel
// closes when ctx is canceled.
func (b *Bus) SubscribeFavoritesChanged(ctx context.Context) (<-chan FavoritesChanged, error) {
	messages, err := b.pubsub.Subscribe(ctx, TopicFavoritesChanged)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", TopicFavoritesChanged, err)
	}

	out := make(chan FavoritesChanged, 16)
	go func() {
		defer close(out)
		for msg := range messages {
			var ev FavoritesChanged
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				b.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("drop malformed change event")
				msg.Ack()
				continue
			}
			msg.Ack()
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
