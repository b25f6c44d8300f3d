// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package services

import (
	"context"
	"time"

	"github.com/scoutdeck/scoutdeck/internal/logging"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
)

// CatalogReloader matches catalog.Catalog's file-load methods.
type CatalogReloader interface {
	LoadFile(path string) error
	Len() int
}

// CatalogBroadcaster matches the hub's ingest cue.
type CatalogBroadcaster interface {
	BroadcastCatalogUpdated(productCount int)
}

// CatalogReloadService re-reads the crawler dataset on a timer, for
// deployments where the crawler writes the file in place instead of
// pushing through the ingest endpoint. A failed read keeps the current
// snapshot.
type CatalogReloadService struct {
	catalog  CatalogReloader
	hub      CatalogBroadcaster
	path     string
	interval time.Duration
}

// NewCatalogReloadService wraps periodic catalog reloading for
// supervision. hub may be nil.
func NewCatalogReloadService(catalog CatalogReloader, hub CatalogBroadcaster, path string, interval time.Duration) *CatalogReloadService {
	return &CatalogReloadService{
		catalog:  catalog,
		hub:      hub,
		path:     path,
		interval: interval,
	}
}

// Serve implements suture.Service.
func (c *CatalogReloadService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.catalog.LoadFile(c.path); err != nil {
				logging.Warn().Err(err).Str("path", c.path).Msg("catalog reload failed")
				continue
			}
			count := c.catalog.Len()
			metrics.CatalogProducts.Set(float64(count))
			if c.hub != nil {
				c.hub.BroadcastCatalogUpdated(count)
			}
			logging.Info().Int("products", count).Msg("catalog reloaded")
		}
	}
}

// String identifies the service in supervisor logs.
func (c *CatalogReloadService) String() string {
	return "catalog-reloader"
}
