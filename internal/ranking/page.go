// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package ranking

import "github.com/scoutdeck/scoutdeck/internal/catalog"

// DefaultPageSize is the catalog page size when none is configured.
const DefaultPageSize = 24

// Page returns the first page*size products. Pagination is "load more"
// style: page N extends the slice rather than windowing it, so the caller
// re-renders a growing prefix of the same ordering without a re-fetch.
// Page numbers start at 1; out-of-range values return the full list.
func Page(products []catalog.Product, page, size int) []catalog.Product {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	end := page * size
	if end >= len(products) {
		return products
	}
	return products[:end]
}
