// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package services adapts long-running components to suture.Service.
// Each wrapper takes a narrow interface rather than the concrete type,
// so services stay testable with fakes.
package services
