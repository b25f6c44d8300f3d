// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package favorites

import (
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/events"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
	"github.com/scoutdeck/scoutdeck/internal/metrics"
)

// Store is the favorites entity store. All operations are synchronous
// read-modify-write cycles against the key-value store, serialized behind
// one mutex; change events broadcast after the write commits.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.Store
	legacy *legacyAdapter
	bus    *events.Bus
	logger zerolog.Logger
	now    func() time.Time

	migrated   bool
	legacyOnly int
}

// New creates a favorites store over the given persisted store. The bus
// may be nil (no broadcasts), which tests use.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(kv kvstore.Store, bus *events.Bus, logger zerolog.Logger) *Store {
	return &Store{
		kv:     kv,
		legacy: &legacyAdapter{kv: kv},
		bus:    bus,
		logger: logger.With().Str("component", "favorites").Logger(),
		now:    time.Now,
	}
}

// AddProduct favorites a product. Idempotent: returns false without
// rewriting anything when the fingerprint is already present.
func (s *Store) AddProduct(p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(KindProduct, catalog.Fingerprint(&p), productSnapshot(&p))
}

// RemoveProduct unfavorites a product. Returns false when the product was
// favorited neither in the current store nor under any legacy key.
func (s *Store) RemoveProduct(p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(KindProduct, catalog.Fingerprint(&p), legacyCandidates(&p))
}

// ToggleProduct flips the favorited state and returns the new state.
func (s *Store) ToggleProduct(p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isFavorited(KindProduct, catalog.Fingerprint(&p), legacyCandidates(&p)) {
		s.remove(KindProduct, catalog.Fingerprint(&p), legacyCandidates(&p))
		return false
	}
	s.add(KindProduct, catalog.Fingerprint(&p), productSnapshot(&p))
	return true
}

// IsProductFavorited reports whether the product is favorited, checking
// the current store first and falling back to legacy keys at read time.
func (s *Store) IsProductFavorited(p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFavorited(KindProduct, catalog.Fingerprint(&p), legacyCandidates(&p))
}

// AddBlog favorites a blog post. Idempotent like AddProduct.
func (s *Store) AddBlog(b Blog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(KindBlog, BlogKey(&b), Item{Name: b.Title, Website: catalog.NormalizeWebsite(b.URL), Source: b.Source})
}

// RemoveBlog unfavorites a blog post.
func (s *Store) RemoveBlog(b Blog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(KindBlog, BlogKey(&b), []string{BlogKey(&b), b.Title, b.URL})
}

// ToggleBlog flips the favorited state and returns the new state.
func (s *Store) ToggleBlog(b Blog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isFavorited(KindBlog, BlogKey(&b), []string{BlogKey(&b), b.Title, b.URL}) {
		s.remove(KindBlog, BlogKey(&b), []string{BlogKey(&b), b.Title, b.URL})
		return false
	}
	s.add(KindBlog, BlogKey(&b), Item{Name: b.Title, Website: catalog.NormalizeWebsite(b.URL), Source: b.Source})
	return true
}

// IsBlogFavorited reports whether the blog post is favorited.
func (s *Store) IsBlogFavorited(b Blog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFavorited(KindBlog, BlogKey(&b), []string{BlogKey(&b), b.Title, b.URL})
}

// RemoveByKey unfavorites by stored fingerprint, for callers that hold
// an Entry.Key rather than the original record.
func (s *Store) RemoveByKey(kind Kind, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(kind, key, []string{key})
}

// List returns the entries of one kind, newest first.
func (s *Store) List(kind Kind) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), *s.entriesOf(kind)...)
}

// Counts returns the product and blog favorite counts.
func (s *Store) Counts() (products, blogs int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.read()
	return len(b.Products), len(b.Blogs)
}

// LegacyOnlyCount returns the number of legacy entries migration could
// not map to the current schema; the UI surfaces these as a "needs
// re-save" hint rather than dropping them silently.
func (s *Store) LegacyOnlyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.read() // ensure migration ran
	return s.legacyOnly
}

// legacyCandidates returns the legacy key forms a product may have been
// stored under: fingerprint, bare name, bare website.
func legacyCandidates(p *catalog.Product) []string {
	return []string{catalog.Fingerprint(p), p.Name, p.Website}
}

// entriesOf returns the blob slice for a kind. Assumes s.mu is held; the
// returned pointer is into a fresh read and safe to copy from.
func (s *Store) entriesOf(kind Kind) *[]Entry {
	b := s.read()
	if kind == KindBlog {
		return &b.Blogs
	}
	return &b.Products
}

// add assumes s.mu is held.
func (s *Store) add(kind Kind, key string, item Item) bool {
	b := s.read()
	entries := &b.Products
	if kind == KindBlog {
		entries = &b.Blogs
	}

	for _, e := range *entries {
		if e.Key == key {
			return false
		}
	}

	entry := Entry{Key: key, SavedAt: formatSavedAt(s.now()), Item: item}
	*entries = append([]Entry{entry}, *entries...)
	s.persist(b)

	if err := s.legacy.mirrorAdd(key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("mirror favorite into legacy storage")
	}
	s.broadcast(kind, "add", key, len(*entries))
	return true
}

// remove assumes s.mu is held.
func (s *Store) remove(kind Kind, key string, legacyKeys []string) bool {
	b := s.read()
	entries := &b.Products
	if kind == KindBlog {
		entries = &b.Blogs
	}

	kept := make([]Entry, 0, len(*entries))
	for _, e := range *entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}
	changed := len(kept) != len(*entries)

	if !changed && !s.legacy.contains(legacyKeys...) {
		return false
	}

	*entries = kept
	s.persist(b)

	if err := s.legacy.mirrorRemove(legacyKeys...); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("mirror removal into legacy storage")
	}
	s.broadcast(kind, "remove", key, len(*entries))
	return true
}

// isFavorited assumes s.mu is held.
func (s *Store) isFavorited(kind Kind, key string, legacyKeys []string) bool {
	for _, e := range *s.entriesOf(kind) {
		if e.Key == key {
			return true
		}
	}
	return s.legacy.contains(legacyKeys...)
}

// read loads the current-schema blob, attempting the one-shot legacy
// migration on a cold (absent or empty) read. Malformed persisted data
// reads as the empty store. Assumes s.mu is held.
func (s *Store) read() blob {
	b := emptyBlob()
	if raw, ok, err := s.kv.Get(StorageKey); err == nil && ok {
		var parsed blob
		if json.Unmarshal([]byte(raw), &parsed) == nil && parsed.Version == SchemaVersion {
			if parsed.Products == nil {
				parsed.Products = []Entry{}
			}
			if parsed.Blogs == nil {
				parsed.Blogs = []Entry{}
			}
			b = parsed
		}
	}

	if len(b.Products) == 0 && len(b.Blogs) == 0 && !s.migrated {
		s.migrated = true
		migratedEntries, unmapped := s.migrateLegacy()
		s.legacyOnly = unmapped
		metrics.FavoritesLegacyOnly.Set(float64(unmapped))
		if len(migratedEntries) > 0 {
			b.Products = migratedEntries
			s.persist(b)
			metrics.FavoritesMigrations.Inc()
			s.logger.Info().
				Int("entries", len(migratedEntries)).
				Int("unmapped", unmapped).
				Msg("migrated legacy favorites")
		}
	}
	return b
}

// persist writes the blob back. Write failures are logged and absorbed;
// the in-memory result of the current operation still stands for the
// caller. Assumes s.mu is held.
func (s *Store) persist(b blob) {
	data, err := json.Marshal(b)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshal favorites store")
		return
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		s.logger.Warn().Err(err).Msg("persist favorites store")
	}
}

func (s *Store) broadcast(kind Kind, action, key string, count int) {
	if s.bus == nil {
		return
	}
	s.bus.PublishFavoritesChanged(events.FavoritesChanged{
		Kind:   string(kind),
		Action: action,
		Key:    key,
		Count:  count,
		At:     s.now().UTC(),
	})
}
