// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package catalog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Catalog holds the current in-memory product list. The list arrives
// pre-fetched from the upstream pipeline; the catalog only stores and
// snapshots it. Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Load reads a JSON array of products from r and replaces the current list.
func (c *Catalog) Load(r io.Reader) error {
	var products []Product
	dec := json.NewDecoder(r)
	if err := dec.Decode(&products); err != nil {
		return fmt.Errorf("decode product list: %w", err)
	}
	c.Replace(products)
	return nil
}

// LoadFile reads a JSON product list from the given path.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open product list: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return c.Load(f)
}

// Replace swaps in a new product list.
func (c *Catalog) Replace(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

// Snapshot returns a copy of the current product list. Callers may filter
// and sort the copy freely without affecting the catalog.
func (c *Catalog) Snapshot() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products currently held.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
