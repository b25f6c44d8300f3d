// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package middleware provides HTTP middleware shared by the API layer:
// Prometheus request instrumentation, gzip response compression, and a
// rolling-window performance monitor surfaced by the health endpoints.
package middleware
