// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package favorites

import (
	"strings"
	"time"
)

// migrateLegacy synthesizes current-schema product entries from both
// legacy blobs. Object entries win over plain keys when both name the
// same entity; duplicates collapse by normalized key. The unmapped count
// covers legacy records with no extractable identity.
//
// Assumes s.mu is held. Runs at most once per process; read() gates it.
func (s *Store) migrateLegacy() (entries []Entry, unmapped int) {
	seen := make(map[string]bool)
	fallback := formatSavedAt(s.now())

	objects, unmapped := s.legacy.readObjectList()
	for _, o := range objects {
		if seen[o.Key] {
			continue
		}
		seen[o.Key] = true
		entries = append(entries, Entry{
			Key:     o.Key,
			SavedAt: migratedSavedAt(o.SavedAt, fallback),
			Item: Item{
				Name:       firstNonEmpty(o.Name, nameFromKey(o.Key)),
				Website:    websiteFromLegacy(o.Website, o.Key),
				Categories: o.Categories,
				Source:     o.Source,
			},
		})
	}

	for _, raw := range s.legacy.readKeyList() {
		key := normalizeLegacyKey(raw)
		if key == "" || key == "::" {
			unmapped++
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, Entry{
			Key:     key,
			SavedAt: fallback,
			Item: Item{
				Name:    nameFromKey(key),
				Website: websiteFromLegacy("", key),
			},
		})
	}
	return entries, unmapped
}

// migratedSavedAt keeps a legacy timestamp when it parses as RFC 3339,
// otherwise stamps the migration time.
func migratedSavedAt(raw, fallback string) string {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw)); err == nil {
		return formatSavedAt(t)
	}
	return fallback
}

// nameFromKey recovers a display name from a fingerprint-shaped key.
func nameFromKey(key string) string {
	if i := strings.LastIndex(key, "::"); i >= 0 {
		return key[i+2:]
	}
	return key
}

// websiteFromLegacy prefers an explicit website field, falling back to
// the site half of a fingerprint-shaped key.
func websiteFromLegacy(website, key string) string {
	if strings.TrimSpace(website) != "" {
		return normalizeLegacyKey(website)
	}
	if i := strings.Index(key, "::"); i > 0 {
		return key[:i]
	}
	return ""
}
