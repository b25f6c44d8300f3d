// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Server.Port != 8460 {
		t.Fatalf("default port = %d, want 8460", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 24 {
		t.Fatalf("default page size = %d, want 24", cfg.API.DefaultPageSize)
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
api:
  default_page_size: 12
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SCOUTDECK_HTTP_PORT", "9100")
	t.Setenv("SCOUTDECK_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 12 {
		t.Fatalf("page size = %d, want file value 12", cfg.API.DefaultPageSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want untouched default 30s", cfg.Server.Timeout)
	}
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("SCOUTDECK_CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("cors origins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Server.CORSOrigins[i] != want[i] {
			t.Fatalf("cors origins = %v, want %v", cfg.Server.CORSOrigins, want)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"sub-second timeout", func(c *Config) { c.Server.Timeout = 100 * time.Millisecond }},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }},
		{"zero page size", func(c *Config) { c.API.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.API.MaxPageSize = 1 }},
		{"oversized stack", func(c *Config) { c.Deck.StackSize = 11 }},
		{"negative swipe ttl", func(c *Config) { c.Deck.SwipeTTL = -time.Hour }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "text" }},
		{"negative scoring weight", func(c *Config) { c.Scoring.HeatWeight = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnvTransformDropsUnknownKeys(t *testing.T) {
	if got := envTransformFunc("SCOUTDECK_HTTP_PORT"); got != "server.port" {
		t.Fatalf("transform = %q, want server.port", got)
	}
	if got := envTransformFunc("SCOUTDECK_UNRELATED"); got != "" {
		t.Fatalf("transform = %q, want unknown keys dropped", got)
	}
}
