// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
)

// Default scoring parameters. Exposed through Config so deployments can
// tune the blend without a rebuild.
const (
	DefaultHeatWeight      = 0.65
	DefaultFreshnessWeight = 0.30
	DefaultFundingWeight   = 0.05
	DefaultHalfLifeDays    = 21.0
	DefaultFundingLogScale = 35.0

	// tierSignalStep converts a dark-horse tier (0-5) to a heat floor.
	tierSignalStep = 20.0

	maxScore = 100.0
)

// Config holds the composite score weights and decay parameters.
type Config struct {
	// HeatWeight is the composite weight of the heat score.
	HeatWeight float64 `koanf:"heat_weight"`

	// FreshnessWeight is the composite weight of the freshness score.
	FreshnessWeight float64 `koanf:"freshness_weight"`

	// FundingWeight is the composite weight of the funding bonus.
	FundingWeight float64 `koanf:"funding_weight"`

	// HalfLifeDays is the freshness decay half-life in days.
	HalfLifeDays float64 `koanf:"half_life_days"`

	// FundingLogScale multiplies log10(1+fundingMillions) for the bonus.
	FundingLogScale float64 `koanf:"funding_log_scale"`
}

// DefaultConfig returns the production scoring parameters.
func DefaultConfig() Config {
	return Config{
		HeatWeight:      DefaultHeatWeight,
		FreshnessWeight: DefaultFreshnessWeight,
		FundingWeight:   DefaultFundingWeight,
		HalfLifeDays:    DefaultHalfLifeDays,
		FundingLogScale: DefaultFundingLogScale,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.HeatWeight < 0 || c.FreshnessWeight < 0 || c.FundingWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative: heat=%f freshness=%f funding=%f",
			c.HeatWeight, c.FreshnessWeight, c.FundingWeight)
	}
	sum := c.HeatWeight + c.FreshnessWeight + c.FundingWeight
	if sum <= 0 {
		return fmt.Errorf("scoring weights sum to %f, want > 0", sum)
	}
	if c.HalfLifeDays <= 0 {
		return fmt.Errorf("half-life must be positive, got %f", c.HalfLifeDays)
	}
	if c.FundingLogScale <= 0 {
		return fmt.Errorf("funding log scale must be positive, got %f", c.FundingLogScale)
	}
	return nil
}

// Scorer computes product scores under a fixed configuration.
// The zero-config scorer uses production defaults.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer, applying defaults for zero config values.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.HeatWeight == 0 && cfg.FreshnessWeight == 0 && cfg.FundingWeight == 0 {
		cfg.HeatWeight = def.HeatWeight
		cfg.FreshnessWeight = def.FreshnessWeight
		cfg.FundingWeight = def.FundingWeight
	}
	if cfg.HalfLifeDays <= 0 {
		cfg.HalfLifeDays = def.HalfLifeDays
	}
	if cfg.FundingLogScale <= 0 {
		cfg.FundingLogScale = def.FundingLogScale
	}
	return &Scorer{cfg: cfg}
}

// Config returns the scorer's effective configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// Heat returns the blended "how hot right now" signal in [0,100]:
// the max of the raw engagement metrics, floored by the tier-derived
// signal (darkHorseIndex * 20).
func (s *Scorer) Heat(p *catalog.Product) float64 {
	maxSignal := math.Max(math.Max(p.HotScore, p.FinalScore), math.Max(p.TrendingScore, 0))
	tierSignal := math.Max(0, float64(p.DarkHorseIndex)) * tierSignalStep
	return math.Min(maxScore, math.Max(maxSignal, tierSignal))
}

// Freshness returns the exponential-decay recency score in [0,100].
// Products with no parseable date score 0. At age == half-life the score
// is exactly 50 (modulo floating point).
func (s *Scorer) Freshness(p *catalog.Product, now time.Time) float64 {
	date := ProductDate(p)
	if date.IsZero() {
		return 0
	}
	ageDays := now.Sub(date).Hours() / 24
	score := maxScore * math.Exp(-math.Ln2/s.cfg.HalfLifeDays*ageDays)
	return math.Min(maxScore, math.Max(0, score))
}

// FundingBonus returns the log-scaled funding signal in [0,100].
func (s *Scorer) FundingBonus(p *catalog.Product) float64 {
	millions := math.Max(0, ParseFundingAmount(p.FundingTotal))
	return math.Min(maxScore, math.Log10(1+millions)*s.cfg.FundingLogScale)
}

// Composite returns the weighted blend of heat, freshness, and funding.
func (s *Scorer) Composite(p *catalog.Product, now time.Time) float64 {
	return s.cfg.HeatWeight*s.Heat(p) +
		s.cfg.FreshnessWeight*s.Freshness(p, now) +
		s.cfg.FundingWeight*s.FundingBonus(p)
}

// dateLayouts are tried in order when parsing product date fields.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ProductDate returns the first parseable of firstSeen, publishedAt,
// discoveredAt, or the zero time if none parse.
func ProductDate(p *catalog.Product) time.Time {
	for _, raw := range []string{p.FirstSeen, p.PublishedAt, p.DiscoveredAt} {
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
