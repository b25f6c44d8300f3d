// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package favorites

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
)

// Legacy storage keys still honored for backward compatibility.
const (
	// LegacyKeyListKey held version 1 favorites: a plain JSON array of
	// fingerprint strings. Mutations mirror into this key so legacy
	// code paths keep working.
	LegacyKeyListKey = "scoutdeck:favorites"

	// LegacyObjectListKey held version 2 favorites: a JSON array of
	// objects with inconsistent field names.
	LegacyObjectListKey = "scoutdeck:favorite_items"
)

// legacyEntry is the best-effort extraction of one legacy favorite.
type legacyEntry struct {
	Key        string
	Name       string
	Website    string
	Categories []string
	Source     string
	SavedAt    string
}

// legacyObject tolerates the field-name drift of the v2 object shape:
// key/id/name identify the entity, website/url/site carry the link,
// savedAt/saved_at/time carry the timestamp.
type legacyObject struct {
	Key        string   `json:"key"`
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Website    string   `json:"website"`
	URL        string   `json:"url"`
	Site       string   `json:"site"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Source     string   `json:"source"`
	SavedAt    string   `json:"savedAt"`
	SavedAtAlt string   `json:"saved_at"`
	Time       string   `json:"time"`
}

// legacyAdapter isolates all legacy-shape parsing and mirroring from the
// v3 store logic.
type legacyAdapter struct {
	kv kvstore.Store
}

// normalizeLegacyKey canonicalizes any legacy key form (fingerprint,
// bare name, bare website) for dedup. Empty means unusable.
func normalizeLegacyKey(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	if k == "" {
		return ""
	}
	if strings.Contains(k, "::") {
		return k
	}
	if site := catalog.NormalizeWebsite(k); site != k && site != "" {
		return site
	}
	return k
}

// readKeyList parses the v1 plain key array. Malformed data reads empty.
func (a *legacyAdapter) readKeyList() []string {
	raw, ok, err := a.kv.Get(LegacyKeyListKey)
	if err != nil || !ok {
		return nil
	}
	var keys []string
	if json.Unmarshal([]byte(raw), &keys) != nil {
		return nil
	}
	return keys
}

// readObjectList parses the v2 object array into best-effort entries.
// Objects with no usable identity are returned in the second slice so
// callers can surface them as a "needs re-save" count.
func (a *legacyAdapter) readObjectList() (entries []legacyEntry, unmapped int) {
	raw, ok, err := a.kv.Get(LegacyObjectListKey)
	if err != nil || !ok {
		return nil, 0
	}
	var objects []legacyObject
	if json.Unmarshal([]byte(raw), &objects) != nil {
		return nil, 0
	}

	for _, o := range objects {
		e := legacyEntry{
			Key:     legacyObjectKey(o),
			Name:    firstNonEmpty(o.Name, o.Title),
			Website: firstNonEmpty(o.Website, o.URL, o.Site),
			Source:  o.Source,
			SavedAt: firstNonEmpty(o.SavedAt, o.SavedAtAlt, o.Time),
		}
		e.Categories = o.Categories
		if len(e.Categories) == 0 {
			e.Categories = o.Tags
		}

		if e.Key == "" {
			unmapped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, unmapped
}

// legacyObjectKey derives the dedup identity of one v2 object. Empty
// means the object carries no usable identity.
func legacyObjectKey(o legacyObject) string {
	name := firstNonEmpty(o.Name, o.Title)
	website := firstNonEmpty(o.Website, o.URL, o.Site)

	var key string
	switch {
	case o.Key != "":
		key = normalizeLegacyKey(o.Key)
	case name != "" || website != "":
		key = catalog.NormalizeWebsite(website) + "::" + strings.ToLower(strings.TrimSpace(name))
	case o.ID != "":
		key = normalizeLegacyKey(o.ID)
	}

	if key == "" || key == "::" {
		return ""
	}
	return key
}

// normalizedKeySet builds the normalized lookup set for candidate keys.
func normalizedKeySet(candidates []string) map[string]bool {
	want := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if k := normalizeLegacyKey(c); k != "" && k != "::" {
			want[k] = true
		}
	}
	return want
}

// contains reports whether any legacy blob holds any of the candidate
// keys. Read-time fallback only; legacy entries are never eagerly merged.
func (a *legacyAdapter) contains(candidates ...string) bool {
	want := normalizedKeySet(candidates)
	if len(want) == 0 {
		return false
	}

	for _, k := range a.readKeyList() {
		if want[normalizeLegacyKey(k)] {
			return true
		}
	}
	entries, _ := a.readObjectList()
	for _, e := range entries {
		if want[e.Key] {
			return true
		}
	}
	return false
}

// mirrorAdd appends a fingerprint to the v1 key array, keeping legacy
// readers consistent with the v3 store.
func (a *legacyAdapter) mirrorAdd(key string) error {
	keys := a.readKeyList()
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	keys = append(keys, key)
	return a.writeKeyList(keys)
}

// mirrorRemove drops any of the candidate keys from both legacy blobs.
// Without the v2 pass a removed favorite would resurrect through the
// read-time fallback on the object list.
func (a *legacyAdapter) mirrorRemove(candidates ...string) error {
	want := normalizedKeySet(candidates)
	if len(want) == 0 {
		return nil
	}

	keys := a.readKeyList()
	kept := keys[:0]
	for _, k := range keys {
		if !want[normalizeLegacyKey(k)] {
			kept = append(kept, k)
		}
	}
	if len(kept) != len(keys) {
		if err := a.writeKeyList(kept); err != nil {
			return err
		}
	}
	return a.removeFromObjectList(want)
}

// removeFromObjectList rewrites the v2 object array without the matched
// objects, preserving the original bytes of every kept object.
func (a *legacyAdapter) removeFromObjectList(want map[string]bool) error {
	raw, ok, err := a.kv.Get(LegacyObjectListKey)
	if err != nil || !ok {
		return nil
	}
	var objects []legacyObject
	if json.Unmarshal([]byte(raw), &objects) != nil {
		return nil
	}
	var originals []json.RawMessage
	if json.Unmarshal([]byte(raw), &originals) != nil || len(originals) != len(objects) {
		return nil
	}

	kept := originals[:0]
	for i, o := range objects {
		if key := legacyObjectKey(o); key != "" && want[key] {
			continue
		}
		kept = append(kept, originals[i])
	}
	if len(kept) == len(objects) {
		return nil
	}
	data, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return a.kv.Set(LegacyObjectListKey, string(data))
}

func (a *legacyAdapter) writeKeyList(keys []string) error {
	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return a.kv.Set(LegacyKeyListKey, string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
