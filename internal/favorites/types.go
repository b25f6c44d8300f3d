// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package favorites

import (
	"strings"
	"time"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
)

// Persisted storage keys.
const (
	// StorageKey holds the current-schema blob.
	StorageKey = "scoutdeck:favorites:v3"

	// SchemaVersion is the current blob version.
	SchemaVersion = 3
)

// Kind distinguishes the two favoritable entity kinds.
type Kind string

// Entity kinds.
const (
	KindProduct Kind = "product"
	KindBlog    Kind = "blog"
)

// Item is the sanitized display snapshot stored with a favorite. It
// carries only the fields the favorites panel renders; it is a copy, not
// a live reference to the catalog record.
type Item struct {
	Name           string   `json:"name"`
	Website        string   `json:"website,omitempty"`
	Category       string   `json:"category,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	DarkHorseIndex int      `json:"darkHorseIndex,omitempty"`
	FundingTotal   string   `json:"fundingTotal,omitempty"`
	Source         string   `json:"source,omitempty"`
}

// Entry is one persisted favorite.
type Entry struct {
	// Key is the entity fingerprint.
	Key string `json:"key"`

	// SavedAt is the like timestamp, RFC 3339.
	SavedAt string `json:"saved_at"`

	// Item is the display snapshot.
	Item Item `json:"item"`
}

// Blog identifies a favoritable blog post.
type Blog struct {
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

// blob is the persisted current-schema store.
type blob struct {
	Version  int     `json:"version"`
	Products []Entry `json:"products"`
	Blogs    []Entry `json:"blogs"`
}

func emptyBlob() blob {
	return blob{Version: SchemaVersion, Products: []Entry{}, Blogs: []Entry{}}
}

// productSnapshot builds the sanitized item for a product.
func productSnapshot(p *catalog.Product) Item {
	return Item{
		Name:           p.Name,
		Website:        catalog.NormalizeWebsite(p.Website),
		Category:       p.Category,
		Categories:     append([]string(nil), p.Categories...),
		DarkHorseIndex: p.DarkHorseIndex,
		FundingTotal:   p.FundingTotal,
	}
}

// BlogKey returns the dedup fingerprint of a blog post, mirroring the
// product fingerprint shape.
func BlogKey(b *Blog) string {
	return catalog.NormalizeWebsite(b.URL) + "::" + strings.ToLower(strings.TrimSpace(b.Title))
}

func formatSavedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
