// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package kvstore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/scoutdeck/scoutdeck/internal/metrics"
)

// Badger is a BadgerDB-backed Store for production persistence. Values
// survive process restarts; the badger directory is the durability
// boundary (single machine, no replication).
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger store at dir. An empty dir opens
// an in-memory badger instance, useful for integration tests that want
// real transaction semantics without disk state.
func OpenBadger(dir string) (*Badger, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	// Badger's default logger writes unstructured lines to stderr;
	// the service logs through zerolog instead.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	return &Badger{db: db}, nil
}

// Get returns the value for key.
func (b *Badger) Get(key string) (string, bool, error) {
	var value string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues("get").Inc()
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value for key.
func (b *Badger) Set(key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		metrics.StorageErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (b *Badger) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		metrics.StorageErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying badger database.
func (b *Badger) Close() error {
	return b.db.Close()
}
