// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
)

// DefaultStorageKey is the persisted swiped-set namespace.
const DefaultStorageKey = "scoutdeck:swiped"

// swipedBlob is the persisted shape of the no-repeat set: the swiped
// fingerprints and the window start. The whole window expires together.
type swipedBlob struct {
	Keys      []string `json:"keys"`
	Timestamp int64    `json:"timestamp"` // unix millis of window start
}

// swipedSet is the TTL-bounded no-repeat set backed by the key-value
// store. Reads absorb malformed or missing data as an empty set; writes
// are write-through at swipe time.
type swipedSet struct {
	kv  kvstore.Store
	key string
	ttl time.Duration
}

// load returns the live fingerprint set, discarding it entirely when the
// window has expired.
func (s *swipedSet) load(now time.Time) map[string]bool {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return map[string]bool{}
	}

	var blob swipedBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		// Malformed persisted data reads as empty, never errors.
		return map[string]bool{}
	}

	start := time.UnixMilli(blob.Timestamp)
	if blob.Timestamp <= 0 || now.Sub(start) > s.ttl {
		return map[string]bool{}
	}

	set := make(map[string]bool, len(blob.Keys))
	for _, k := range blob.Keys {
		set[k] = true
	}
	return set
}

// add appends a fingerprint and persists immediately. The window start is
// set on first write and preserved on subsequent ones so the whole set
// ages out together. Returns any storage error for the caller to log.
func (s *swipedSet) add(fingerprint string, now time.Time) error {
	blob := swipedBlob{Timestamp: now.UnixMilli()}
	if raw, ok, err := s.kv.Get(s.key); err == nil && ok {
		var existing swipedBlob
		if json.Unmarshal([]byte(raw), &existing) == nil && existing.Timestamp > 0 {
			if now.Sub(time.UnixMilli(existing.Timestamp)) <= s.ttl {
				blob = existing
			}
		}
	}

	for _, k := range blob.Keys {
		if k == fingerprint {
			return s.persist(blob)
		}
	}
	blob.Keys = append(blob.Keys, fingerprint)
	return s.persist(blob)
}

// clear removes the persisted set.
func (s *swipedSet) clear() error {
	return s.kv.Delete(s.key)
}

func (s *swipedSet) persist(blob swipedBlob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, string(data))
}
