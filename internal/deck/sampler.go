// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import (
	"sort"
	"time"

	"github.com/scoutdeck/scoutdeck/internal/ranking"
)

// refill draws from the pool until the stack holds StackSize cards or the
// pool runs dry. Assumes d.mu is held.
func (d *Deck) refill(now time.Time) {
	for len(d.stack) < d.cfg.StackSize && len(d.pool) > 0 {
		idx := d.samplePoolIndex(now)
		d.stack = append(d.stack, d.pool[idx])
		d.pool = append(d.pool[:idx], d.pool[idx+1:]...)
	}
}

// samplePoolIndex scores every pool candidate (base composite score plus
// the learned direction weights plus uniform jitter) and picks uniformly
// among the top TopK. The jitter and the top-K pick keep the feed biased
// toward preference without making the ordering deterministic and
// repeat-prone. Assumes d.mu is held and the pool is non-empty.
func (d *Deck) samplePoolIndex(now time.Time) int {
	type candidate struct {
		idx   int
		score float64
	}

	candidates := make([]candidate, len(d.pool))
	for i := range d.pool {
		score := d.scorer.Composite(&d.pool[i], now)
		for _, dir := range ranking.DirectionsOf(&d.pool[i]) {
			score += d.weights[dir]
		}
		score += d.rng.Float64() * d.cfg.Jitter
		candidates[i] = candidate{idx: i, score: score}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	k := d.cfg.TopK
	if k > len(candidates) {
		k = len(candidates)
	}
	return candidates[d.rng.Intn(k)].idx
}
