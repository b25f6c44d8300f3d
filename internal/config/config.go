// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package config

import (
	"time"

	"github.com/scoutdeck/scoutdeck/internal/deck"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
)

// Config is the full application configuration, assembled from defaults,
// an optional YAML file, and environment variables.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Catalog CatalogConfig  `koanf:"catalog"`
	Storage StorageConfig  `koanf:"storage"`
	API     APIConfig      `koanf:"api"`
	Scoring scoring.Config `koanf:"scoring"`
	Deck    deck.Config    `koanf:"deck"`
	Logging LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CatalogConfig locates the crawler-produced product dataset.
type CatalogConfig struct {
	// Path is the catalog JSON file loaded at startup. Empty starts with
	// an empty catalog; data arrives through the ingest endpoint.
	Path string `koanf:"path"`

	// ReloadInterval re-reads Path on a timer. Zero disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// StorageConfig holds the persisted key-value store settings.
type StorageConfig struct {
	// Path is the BadgerDB directory. Empty selects the in-memory store;
	// swiped sets and favorites then last only for the process lifetime.
	Path string `koanf:"path"`
}

// APIConfig holds pagination limits.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Default returns the built-in defaults without consulting a config
// file or the environment.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns the built-in defaults, overridden by the config
// file and then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8460,
			Timeout:         30 * time.Second,
			Environment:     "development",
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Catalog: CatalogConfig{
			Path:           "",
			ReloadInterval: 0,
		},
		Storage: StorageConfig{
			Path: "/data/scoutdeck",
		},
		API: APIConfig{
			DefaultPageSize: 24,
			MaxPageSize:     96,
		},
		Scoring: scoring.DefaultConfig(),
		Deck:    deck.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
