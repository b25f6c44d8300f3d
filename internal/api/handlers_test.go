// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
	"github.com/scoutdeck/scoutdeck/internal/config"
	"github.com/scoutdeck/scoutdeck/internal/deck"
	"github.com/scoutdeck/scoutdeck/internal/favorites"
	"github.com/scoutdeck/scoutdeck/internal/kvstore"
	"github.com/scoutdeck/scoutdeck/internal/middleware"
	"github.com/scoutdeck/scoutdeck/internal/ranking"
	"github.com/scoutdeck/scoutdeck/internal/scoring"
)

// testEnvelope mirrors APIResponse with raw data for per-test decoding.
type testEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *APIError       `json:"error"`
}

func fixtureProducts() []catalog.Product {
	recent := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	return []catalog.Product{
		{
			Name:          "nimbus",
			Website:       "https://nimbus.ai",
			TrendingScore: 90,
			HotScore:      85,
			DiscoveredAt:  recent,
			Category:      "AI agents",
		},
		{
			Name:           "voltcore",
			Website:        "https://voltcore.io",
			FundingTotal:   "$50M",
			DarkHorseIndex: 4,
			DiscoveredAt:   "2025-06-01",
			IsHardware:     true,
			Category:       "robotics",
		},
		{
			Name:         "driftlane",
			Website:      "driftlane.dev",
			HotScore:     40,
			DiscoveredAt: recent,
			Category:     "developer tools",
		},
	}
}

func newTestServer(t *testing.T) (*Handler, http.Handler) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.RateLimitDisabled = true

	cat := catalog.New()
	cat.Replace(fixtureProducts())

	scorer := scoring.NewScorer(cfg.Scoring)
	kv := kvstore.NewMemory()
	logger := zerolog.Nop()

	h := NewHandler(
		cat,
		ranking.NewPipeline(scorer),
		deck.NewManager(kv, scorer, cfg.Deck, logger),
		favorites.New(kv, nil, logger),
		nil, // hub not needed for REST tests
		cfg,
		middleware.NewPerformanceMonitor(100),
	)
	return h, NewRouter(h).Setup()
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %s %s: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestProductsEndpoint(t *testing.T) {
	_, srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/products?sort=composite", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Fatalf("envelope status = %q", env.Status)
	}

	var page productsPage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(page.Products) != 3 {
		t.Fatalf("products = %d, want 3", len(page.Products))
	}
	// Trending+recent beats funded-but-stale under the composite blend.
	if page.Products[0].Name != "nimbus" {
		t.Fatalf("top product = %q, want nimbus", page.Products[0].Name)
	}
	if page.Products[0].CompositeScore <= page.Products[1].CompositeScore {
		t.Fatal("products not in descending composite order")
	}
	if len(page.Facets) == 0 {
		t.Fatal("facets missing")
	}
}

func TestProductsPaginationClampsSize(t *testing.T) {
	_, srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodGet, "/api/v1/products?size=100000", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var env struct {
		Metadata Metadata `json:"metadata"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Metadata.PageSize != config.Default().API.MaxPageSize {
		t.Fatalf("page_size = %d, want clamped to %d", env.Metadata.PageSize, config.Default().API.MaxPageSize)
	}
}

func TestIngestReplacesCatalog(t *testing.T) {
	h, srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/products", []catalog.Product{
		{Name: "solo", Website: "solo.dev"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if h.catalog.Len() != 1 {
		t.Fatalf("catalog len = %d, want 1", h.catalog.Len())
	}

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/v1/products", "not an array")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad body status = %d, want 400", rec.Code)
	}
}

func TestDeckLifecycle(t *testing.T) {
	_, srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/decks", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created deckView
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode deck: %v", err)
	}
	if created.ID == "" {
		t.Fatal("deck ID missing")
	}
	if len(created.Stack) == 0 || len(created.Stack) > 3 {
		t.Fatalf("stack size = %d", len(created.Stack))
	}
	if created.Stats.State != deck.StateStacked {
		t.Fatalf("state = %q, want stacked", created.Stats.State)
	}

	rec, env = doJSON(t, srv, http.MethodPost, "/api/v1/decks/"+created.ID+"/swipe", SwipeRequest{Direction: "right"})
	if rec.Code != http.StatusOK {
		t.Fatalf("swipe status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result swipeResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode swipe: %v", err)
	}
	if !result.Committed || result.Card == nil {
		t.Fatal("swipe did not commit a card")
	}
	if result.Stats.LikedCount != 1 {
		t.Fatalf("liked_count = %d, want 1", result.Stats.LikedCount)
	}

	// Second swipe inside the exit animation window must be rejected.
	rec, env = doJSON(t, srv, http.MethodPost, "/api/v1/decks/"+created.ID+"/swipe", SwipeRequest{Direction: "left"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("guarded swipe status = %d, want 409", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeConflict {
		t.Fatalf("guarded swipe error = %+v", env.Error)
	}

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/decks/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec, _ = doJSON(t, srv, http.MethodGet, "/api/v1/decks/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestSwipeValidation(t *testing.T) {
	_, srv := newTestServer(t)

	_, env := doJSON(t, srv, http.MethodPost, "/api/v1/decks", nil)
	var created deckView
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode deck: %v", err)
	}

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/decks/"+created.ID+"/swipe", SwipeRequest{Direction: "up"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Fatalf("error = %+v", env.Error)
	}

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/v1/decks/missing/swipe", SwipeRequest{Direction: "left"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown deck status = %d, want 404", rec.Code)
	}
}

func TestReleaseSpringBackMutatesNothing(t *testing.T) {
	_, srv := newTestServer(t)

	_, env := doJSON(t, srv, http.MethodPost, "/api/v1/decks", nil)
	var created deckView
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode deck: %v", err)
	}
	top := created.Stack[0]

	// 40px of touch travel is below the 64px commit threshold.
	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/decks/"+created.ID+"/release", ReleaseRequest{
		OriginX:  100,
		CurrentX: 140,
		Pointer:  "touch",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("release status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result swipeResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode release: %v", err)
	}
	if result.Committed {
		t.Fatal("sub-threshold release must spring back")
	}
	if result.Stack[0].Name != top.Name {
		t.Fatal("spring-back changed the top card")
	}

	// The same travel from a mouse is also below threshold; 90px commits
	// for touch.
	rec, env = doJSON(t, srv, http.MethodPost, "/api/v1/decks/"+created.ID+"/release", ReleaseRequest{
		OriginX:  100,
		CurrentX: 190,
		Pointer:  "touch",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("release status = %d", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode release: %v", err)
	}
	if !result.Committed || result.Direction != deck.DirectionRight {
		t.Fatalf("release = committed %v direction %q, want right commit", result.Committed, result.Direction)
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	_, srv := newTestServer(t)

	req := ToggleFavoriteRequest{
		Kind: "product",
		Product: &ToggleFavoriteProduct{
			Name:    "nimbus",
			Website: "https://nimbus.ai",
		},
	}

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/favorites/toggle", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result map[string]interface{}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode toggle: %v", err)
	}
	if result["favorited"] != true {
		t.Fatal("first toggle should favorite")
	}

	_, env = doJSON(t, srv, http.MethodGet, "/api/v1/favorites", nil)
	var view favoritesView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}
	if len(view.Products) != 1 || view.Products[0].Item.Name != "nimbus" {
		t.Fatalf("favorites = %+v", view.Products)
	}

	rec, env = doJSON(t, srv, http.MethodPost, "/api/v1/favorites/toggle", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("second toggle status = %d", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode toggle: %v", err)
	}
	if result["favorited"] != false {
		t.Fatal("second toggle should unfavorite")
	}
}

func TestToggleFavoriteValidation(t *testing.T) {
	_, srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Kind: "product"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Fatalf("error = %+v", env.Error)
	}

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/v1/favorites/toggle", ToggleFavoriteRequest{
		Kind:    "blog",
		Product: &ToggleFavoriteProduct{Name: "x"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatched kind status = %d, want 400", rec.Code)
	}
}

func TestRemoveFavoriteByKey(t *testing.T) {
	h, srv := newTestServer(t)

	p := fixtureProducts()[0]
	h.favorites.AddProduct(p)
	key := url.PathEscape(catalog.Fingerprint(&p))

	rec, _ := doJSON(t, srv, http.MethodDelete, "/api/v1/favorites/"+key, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d, body %s", rec.Code, rec.Body.String())
	}
	products, _ := h.favorites.Counts()
	if products != 0 {
		t.Fatalf("products after remove = %d, want 0", products)
	}

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/favorites/"+key, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second remove status = %d, want 404", rec.Code)
	}
}

func TestFavoritesCount(t *testing.T) {
	h, srv := newTestServer(t)

	p := fixtureProducts()[1]
	h.favorites.AddProduct(p)
	h.favorites.AddBlog(favorites.Blog{Title: "launch notes", URL: "https://blog.voltcore.io/launch"})

	_, env := doJSON(t, srv, http.MethodGet, "/api/v1/favorites/count", nil)
	var counts map[string]int
	if err := json.Unmarshal(env.Data, &counts); err != nil {
		t.Fatalf("decode counts: %v", err)
	}
	if counts["products"] != 1 || counts["blogs"] != 1 || counts["total"] != 2 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestFacetsCachedUntilIngest(t *testing.T) {
	_, srv := newTestServer(t)

	_, env := doJSON(t, srv, http.MethodGet, "/api/v1/products/facets", nil)
	var first struct {
		Facets map[string]int `json:"facets"`
	}
	if err := json.Unmarshal(env.Data, &first); err != nil {
		t.Fatalf("decode facets: %v", err)
	}
	if len(first.Facets) == 0 {
		t.Fatal("expected facet counts")
	}

	// Replacing the catalog must drop the cached view immediately.
	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/products", []catalog.Product{})
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest status = %d", rec.Code)
	}

	_, env = doJSON(t, srv, http.MethodGet, "/api/v1/products/facets", nil)
	var second struct {
		Facets map[string]int `json:"facets"`
	}
	if err := json.Unmarshal(env.Data, &second); err != nil {
		t.Fatalf("decode facets: %v", err)
	}
	if len(second.Facets) != 0 {
		t.Fatalf("facets after empty ingest = %v, want none", second.Facets)
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/health",
		"/api/v1/health/live",
		"/api/v1/health/ready",
		"/api/v1/health/performance",
	} {
		rec, env := doJSON(t, srv, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		if env.Status != "success" {
			t.Fatalf("%s envelope status = %q", path, env.Status)
		}
	}
}

func TestResponsesCarryRequestIDAndETag(t *testing.T) {
	_, srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header missing")
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("ETag header missing")
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	got := sanitizeLogValue("line1\nline2\tend")
	if strings.ContainsAny(got, "\n\t") {
		t.Fatalf("control characters survived: %q", got)
	}
	if got != "line1\\x0aline2\\x09end" {
		t.Fatalf("sanitized = %q", got)
	}
}
