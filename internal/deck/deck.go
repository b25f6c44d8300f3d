// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
	"github.com/scoutdeck/scoutdeck/internal/ranking"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
)

// Deck tuning defaults.
const (
	DefaultStackSize       = 3
	DefaultTopK            = 6
	DefaultLikeBonus       = 2.0
	DefaultStreakPenalty   = 0.5
	DefaultStreakThreshold = 4
	DefaultWeightClamp     = 6.0
	DefaultJitter          = 10.0
	DefaultSwipeTTL        = 7 * 24 * time.Hour
)

// State is the deck lifecycle state.
type State string

// Deck states. Exhausted is terminal until Reset.
const (
	StateIdle      State = "idle"
	StateStacked   State = "stacked"
	StateExhausted State = "exhausted"
)

// Sentinel errors returned by Swipe.
var (
	// ErrNotBuilt is returned when swiping an Idle deck.
	ErrNotBuilt = errors.New("deck: not built")

	// ErrExhausted is returned when pool and stack are both empty.
	// Exhaustion is a normal terminal status, not a failure.
	ErrExhausted = errors.New("deck: exhausted")

	// ErrCommitInFlight is returned while the previous card's exit
	// animation is still running; the gesture must be ignored to
	// prevent a double-commit.
	ErrCommitInFlight = errors.New("deck: commit animation in flight")
)

// Config tunes one deck. Zero values take the package defaults.
type Config struct {
	// StackSize is the number of rendered top-of-deck cards.
	StackSize int `koanf:"stack_size"`

	// TopK is the weighted-sampling pick window on refill.
	TopK int `koanf:"top_k"`

	// LikeBonus is added to each direction weight of a liked card.
	LikeBonus float64 `koanf:"like_bonus"`

	// StreakPenalty is subtracted from every weight once a skip streak
	// reaches StreakThreshold.
	StreakPenalty float64 `koanf:"streak_penalty"`

	// StreakThreshold is the consecutive-skip count triggering the
	// penalty.
	StreakThreshold int `koanf:"streak_threshold"`

	// WeightClamp bounds every category weight to [-clamp, +clamp].
	WeightClamp float64 `koanf:"weight_clamp"`

	// Jitter is the uniform random bonus amplitude during sampling.
	Jitter float64 `koanf:"jitter"`

	// SwipeTTL is the no-repeat window for swiped fingerprints.
	SwipeTTL time.Duration `koanf:"swipe_ttl"`

	// StorageKey is the persisted swiped-set namespace.
	StorageKey string `koanf:"storage_key"`

	// Seed seeds the deck's random source; 0 means time-based.
	Seed int64 `koanf:"seed"`
}

// DefaultConfig returns production deck tuning.
func DefaultConfig() Config {
	return Config{
		StackSize:       DefaultStackSize,
		TopK:            DefaultTopK,
		LikeBonus:       DefaultLikeBonus,
		StreakPenalty:   DefaultStreakPenalty,
		StreakThreshold: DefaultStreakThreshold,
		WeightClamp:     DefaultWeightClamp,
		Jitter:          DefaultJitter,
		SwipeTTL:        DefaultSwipeTTL,
		StorageKey:      DefaultStorageKey,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.StackSize <= 0 {
		c.StackSize = def.StackSize
	}
	if c.TopK <= 0 {
		c.TopK = def.TopK
	}
	if c.LikeBonus == 0 {
		c.LikeBonus = def.LikeBonus
	}
	if c.StreakPenalty == 0 {
		c.StreakPenalty = def.StreakPenalty
	}
	if c.StreakThreshold <= 0 {
		c.StreakThreshold = def.StreakThreshold
	}
	if c.WeightClamp <= 0 {
		c.WeightClamp = def.WeightClamp
	}
	if c.Jitter < 0 {
		c.Jitter = def.Jitter
	}
	if c.SwipeTTL <= 0 {
		c.SwipeTTL = def.SwipeTTL
	}
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	return c
}

// Stats is a read-only snapshot of deck counters and learned weights.
type Stats struct {
	State           State              `json:"state"`
	LikedCount      int                `json:"liked_count"`
	SkippedCount    int                `json:"skipped_count"`
	LeftStreak      int                `json:"left_streak"`
	PoolSize        int                `json:"pool_size"`
	StackSize       int                `json:"stack_size"`
	CategoryWeights map[string]float64 `json:"category_weights"`
}

// Deck is one session's adaptive recommender. All state transitions are
// serialized behind the deck mutex; callers hold a reference, never the
// internals.
type Deck struct {
	mu     sync.Mutex
	cfg    Config
	scorer *scoring.Scorer
	swiped *swipedSet
	logger zerolog.Logger
	rng    *rand.Rand
	now    func() time.Time
	onLike func(catalog.Product)

	source       []catalog.Product
	pool         []catalog.Product
	stack        []catalog.Product
	likedCount   int
	skippedCount int
	leftStreak   int
	weights      map[string]float64
	guardUntil   time.Time
	built        bool
}

// New creates a deck over the given persisted store and scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(kv kvstore.Store, scorer *scoring.Scorer, cfg Config, logger zerolog.Logger) *Deck {
	cfg = cfg.withDefaults()
	if scorer == nil {
		scorer = scoring.NewScorer(scoring.Config{})
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Deck{
		cfg:     cfg,
		scorer:  scorer,
		swiped:  &swipedSet{kv: kv, key: cfg.StorageKey, ttl: cfg.SwipeTTL},
		logger:  logger.With().Str("component", "deck").Logger(),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // sampling, not crypto
		now:     time.Now,
		weights: make(map[string]float64),
	}
}

// SetLikeCallback registers the function invoked on every right swipe,
// before the stack refills. The favorites store is the expected consumer.
func (d *Deck) SetLikeCallback(fn func(catalog.Product)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onLike = fn
}

// Build initializes the deck from a product list: the persisted swiped
// window is applied (and cleared if it would starve the deck), the
// survivors are shuffled, and the first StackSize cards become the stack.
func (d *Deck) Build(products []catalog.Product) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.source = make([]catalog.Product, len(products))
	copy(d.source, products)
	d.build()
}

// build assumes d.mu is held and d.source is set.
func (d *Deck) build() {
	now := d.now()
	seen := d.swiped.load(now)

	candidates := make([]catalog.Product, 0, len(d.source))
	for i := range d.source {
		if !seen[catalog.Fingerprint(&d.source[i])] {
			candidates = append(candidates, d.source[i])
		}
	}

	// Starvation guard: if every candidate was already swiped, forget
	// the window and deal the full list again.
	if len(candidates) == 0 && len(d.source) > 0 {
		if err := d.swiped.clear(); err != nil {
			d.logger.Warn().Err(err).Msg("clear exhausted swiped set")
		}
		candidates = append(candidates, d.source...)
	}

	d.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	cut := min(d.cfg.StackSize, len(candidates))
	d.stack = append([]catalog.Product(nil), candidates[:cut]...)
	d.pool = append([]catalog.Product(nil), candidates[cut:]...)
	d.likedCount, d.skippedCount, d.leftStreak = 0, 0, 0
	d.weights = make(map[string]float64)
	d.guardUntil = time.Time{}
	d.built = true

	d.logger.Debug().
		Int("stack", len(d.stack)).
		Int("pool", len(d.pool)).
		Int("excluded", len(d.source)-len(candidates)).
		Msg("deck built")
}

// Swipe commits the active card in the given direction and refills the
// stack. The swiped fingerprint is persisted write-through before any
// counter or weight updates. Returns the committed card.
func (d *Deck) Swipe(direction Direction) (catalog.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.built {
		return catalog.Product{}, ErrNotBuilt
	}
	if len(d.stack) == 0 {
		return catalog.Product{}, ErrExhausted
	}

	now := d.now()
	if now.Before(d.guardUntil) {
		return catalog.Product{}, ErrCommitInFlight
	}

	card := d.stack[0]
	if err := d.swiped.add(catalog.Fingerprint(&card), now); err != nil {
		// Best effort: the session keeps its in-memory state even if
		// persistence is unavailable.
		d.logger.Warn().Err(err).Str("product", card.Name).Msg("persist swiped fingerprint")
	}

	switch direction {
	case DirectionRight:
		d.likedCount++
		d.leftStreak = 0
		for _, dir := range ranking.DirectionsOf(&card) {
			d.adjustWeight(dir, d.cfg.LikeBonus)
		}
		if d.onLike != nil {
			d.onLike(card)
		}
	case DirectionLeft:
		d.skippedCount++
		d.leftStreak++
		if d.leftStreak >= d.cfg.StreakThreshold {
			for dir := range d.weights {
				d.adjustWeight(dir, -d.cfg.StreakPenalty)
			}
		}
	default:
		return catalog.Product{}, fmt.Errorf("deck: unknown direction %q", direction)
	}

	d.stack = d.stack[1:]
	d.refill(now)
	d.guardUntil = now.Add(ExitAnimationDuration)

	d.logger.Debug().
		Str("direction", string(direction)).
		Str("product", card.Name).
		Int("pool", len(d.pool)).
		Msg("swipe committed")

	return card, nil
}

// Release interprets a pointer-up on the active card: below-threshold
// drags spring back without touching deck state, committed drags swipe.
func (d *Deck) Release(drag Drag, kind PointerKind) (catalog.Product, Direction, bool, error) {
	direction, commit := ClassifyRelease(drag, kind)
	if !commit {
		return catalog.Product{}, "", false, nil
	}
	card, err := d.Swipe(direction)
	if err != nil {
		return catalog.Product{}, "", false, err
	}
	return card, direction, true, nil
}

// adjustWeight applies a signed delta with the configured clamp. Assumes
// d.mu is held.
func (d *Deck) adjustWeight(direction string, delta float64) {
	w := d.weights[direction] + delta
	if w > d.cfg.WeightClamp {
		w = d.cfg.WeightClamp
	}
	if w < -d.cfg.WeightClamp {
		w = -d.cfg.WeightClamp
	}
	d.weights[direction] = w
}

// Top returns the active card, or false when the stack is empty.
func (d *Deck) Top() (catalog.Product, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.stack) == 0 {
		return catalog.Product{}, false
	}
	return d.stack[0], true
}

// Stack returns a copy of the rendered cards, stack[0] first.
func (d *Deck) Stack() []catalog.Product {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]catalog.Product(nil), d.stack...)
}

// State reports the lifecycle state.
func (d *Deck) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state()
}

func (d *Deck) state() State {
	switch {
	case !d.built:
		return StateIdle
	case len(d.stack) == 0 && len(d.pool) == 0:
		return StateExhausted
	default:
		return StateStacked
	}
}

// Stats returns a snapshot of counters and learned weights.
func (d *Deck) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	weights := make(map[string]float64, len(d.weights))
	for k, v := range d.weights {
		weights[k] = v
	}
	return Stats{
		State:           d.state(),
		LikedCount:      d.likedCount,
		SkippedCount:    d.skippedCount,
		LeftStreak:      d.leftStreak,
		PoolSize:        len(d.pool),
		StackSize:       len(d.stack),
		CategoryWeights: weights,
	}
}

// Reset clears the persisted swiped set and rebuilds from the original
// product list, leaving Exhausted.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.swiped.clear(); err != nil {
		d.logger.Warn().Err(err).Msg("clear swiped set on reset")
	}
	d.build()
}
