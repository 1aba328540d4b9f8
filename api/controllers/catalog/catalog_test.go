package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	catalogsvc "github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/pkg/enums"
)

func testIndex(t *testing.T) *catalogsvc.Index {
	t.Helper()

	index, err := catalogsvc.NewIndex([]catalogsvc.Item{
		{
			ID:            "char-001",
			Name:          "Charizard",
			Price:         decimal.RequireFromString("120.50"),
			Category:      enums.ItemCategoryPokemon,
			Rarity:        enums.RarityUltraRare,
			SetID:         "darkness-ablaze",
			Language:      "english",
			IsRecommended: true,
		},
		{
			ID:       "pika-001",
			Name:     "Pikachu",
			Price:    decimal.NewFromInt(35),
			Category: enums.ItemCategoryPokemon,
			Rarity:   enums.RarityRare,
			SetID:    "vivid-voltage",
			Language: "english",
		},
		{
			ID:       "trainer-001",
			Name:     "Marnie",
			Price:    decimal.NewFromInt(12),
			Category: enums.ItemCategoryTrainer,
			Rarity:   enums.RarityCommon,
		},
	})
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	return index
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) ListResponse {
	t.Helper()

	var envelope struct {
		Data ListResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	return envelope.Data
}

func TestCatalogListNoCriteria(t *testing.T) {
	t.Parallel()

	handler := CatalogList(testIndex(t), nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	list := decodeList(t, w)
	if list.VisibleCount != 3 || list.TotalCount != 3 {
		t.Fatalf("unexpected counts: %+v", list)
	}
	if list.Items[0].ID != "char-001" || list.Items[0].Price != "120.50" {
		t.Fatalf("expected catalog order with formatted price, got %+v", list.Items[0])
	}
}

func TestCatalogListFiltersAndSorts(t *testing.T) {
	t.Parallel()

	handler := CatalogList(testIndex(t), nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?type=pokemon&sort=price-asc", nil))

	list := decodeList(t, w)
	if list.VisibleCount != 2 || list.TotalCount != 3 {
		t.Fatalf("unexpected counts: %+v", list)
	}
	if list.Items[0].ID != "pika-001" || list.Items[1].ID != "char-001" {
		t.Fatalf("expected ascending price order, got %+v", list.Items)
	}
	if list.Sort != "price-asc" {
		t.Fatalf("unexpected sort echo %q", list.Sort)
	}
}

func TestCatalogListSearchPrecedence(t *testing.T) {
	t.Parallel()

	handler := CatalogList(testIndex(t), nil)

	// The catalog-level q overrides header_q.
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?q=pikachu&header_q=charizard", nil))

	list := decodeList(t, w)
	if list.VisibleCount != 1 || list.Items[0].ID != "pika-001" {
		t.Fatalf("expected catalog search to win, got %+v", list)
	}
}

func TestCatalogListInvalidSort(t *testing.T) {
	t.Parallel()

	handler := CatalogList(testIndex(t), nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?sort=bogus", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCatalogVisibilityEmitsCatalogOrder(t *testing.T) {
	t.Parallel()

	handler := CatalogVisibility(testIndex(t), nil)

	body := []byte(`{"rarities":["ultra-rare","common"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/visibility", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data VisibilityResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode visibility response: %v", err)
	}

	got := envelope.Data
	if got.VisibleCount != 2 || got.TotalCount != 3 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if len(got.VisibleIDs) != 2 || got.VisibleIDs[0] != "char-001" || got.VisibleIDs[1] != "trainer-001" {
		t.Fatalf("expected catalog-order ids, got %v", got.VisibleIDs)
	}
}

func TestCatalogVisibilityRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	handler := CatalogVisibility(testIndex(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/visibility", bytes.NewReader([]byte(`{"bogus":true}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCatalogDetail(t *testing.T) {
	t.Parallel()

	handler := CatalogDetail(testIndex(t), nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("itemID", "pika-001")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/pika-001", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var envelope struct {
		Data ItemDTO `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode item response: %v", err)
	}
	if envelope.Data.ID != "pika-001" || envelope.Data.Price != "35.00" {
		t.Fatalf("unexpected item: %+v", envelope.Data)
	}
}

func TestCatalogDetailNotFound(t *testing.T) {
	t.Parallel()

	handler := CatalogDetail(testIndex(t), nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("itemID", "ghost")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/ghost", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
