// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Validate checks the assembled configuration. Error messages name the
// environment variable that fixes the problem.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateAPI,
		c.validateDeck,
		c.validateLogging,
		c.Scoring.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SCOUTDECK_HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("SCOUTDECK_SERVER_TIMEOUT must be at least 1s")
	}
	switch c.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("SCOUTDECK_ENVIRONMENT must be development, production, or test")
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs < 1 {
			return fmt.Errorf("SCOUTDECK_RATE_LIMIT_REQS must be at least 1")
		}
		if c.Server.RateLimitWindow < time.Second {
			return fmt.Errorf("SCOUTDECK_RATE_LIMIT_WINDOW must be at least 1s")
		}
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("SCOUTDECK_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("SCOUTDECK_MAX_PAGE_SIZE must be >= the default page size")
	}
	return nil
}

func (c *Config) validateDeck() error {
	if c.Deck.StackSize < 0 || c.Deck.StackSize > 10 {
		return fmt.Errorf("SCOUTDECK_DECK_STACK_SIZE must be between 0 and 10")
	}
	if c.Deck.SwipeTTL < 0 {
		return fmt.Errorf("SCOUTDECK_DECK_SWIPE_TTL must be non-negative")
	}
	if c.Deck.WeightClamp < 0 {
		return fmt.Errorf("SCOUTDECK_DECK_WEIGHT_CLAMP must be non-negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("SCOUTDECK_LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("SCOUTDECK_LOG_FORMAT must be json or console")
	}
	return nil
}
