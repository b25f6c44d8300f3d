// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

// Package config loads and validates the application configuration.
//
// Configuration layers, lowest to highest priority:
//
//  1. Built-in defaults
//  2. YAML config file (CONFIG_PATH or the standard search paths)
//  3. SCOUTDECK_* environment variables
//
// Scoring and deck tuning reuse the Config types of their owning
// packages, so the parameter set stays defined next to the code that
// consumes it.
package config
