package catalog

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tcgperu/storefront-backend/api/responses"
	"github.com/tcgperu/storefront-backend/api/validators"
	catalogsvc "github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/pkg/enums"
	pkgerrors "github.com/tcgperu/storefront-backend/pkg/errors"
	"github.com/tcgperu/storefront-backend/pkg/logger"
)

// CatalogList filters and sorts the catalog from query parameters.
func CatalogList(index *catalogsvc.Index, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		query := r.URL.Query()

		sortKey, err := enums.ParseSortKey(query.Get("sort"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort"))
			return
		}

		criteria := criteriaFromQuery(query)
		items := index.Items()
		visibility := catalogsvc.ComputeVisibility(items, criteria)
		visible := catalogsvc.VisibleItems(items, visibility)
		ordered := catalogsvc.Sort(visible, sortKey)

		responses.WriteSuccess(w, ListResponse{
			Items:        newItemDTOs(ordered),
			VisibleCount: visibility.VisibleCount,
			TotalCount:   visibility.TotalCount,
			Sort:         string(sortKey),
		})
	}
}

// CatalogVisibility is the structured filter entry point: criteria in,
// visible ids and counts out.
func CatalogVisibility(index *catalogsvc.Index, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload VisibilityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := index.Items()
		visibility := catalogsvc.ComputeVisibility(items, payload.toCriteria())

		// Emit ids in catalog order so responses are deterministic.
		ids := make([]string, 0, visibility.VisibleCount)
		for _, item := range items {
			if visibility.Visible(item.ID) {
				ids = append(ids, item.ID)
			}
		}

		responses.WriteSuccess(w, VisibilityResponse{
			VisibleIDs:   ids,
			VisibleCount: visibility.VisibleCount,
			TotalCount:   visibility.TotalCount,
		})
	}
}

// CatalogDetail returns one item by id.
func CatalogDetail(index *catalogsvc.Index, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		itemID := chi.URLParam(r, "itemID")
		item, ok := index.Get(itemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}

		responses.WriteSuccess(w, newItemDTO(item))
	}
}

func criteriaFromQuery(query url.Values) catalogsvc.Criteria {
	return catalogsvc.Criteria{
		Search:          catalogsvc.ResolveSearch(query.Get("header_q"), query.Get("q")),
		RecommendedOnly: query.Get("recommended") == "true",
		Types:           query["type"],
		Rarities:        query["rarity"],
		SetIDs:          query["set"],
		Language:        query.Get("language"),
		MinPrice:        catalogsvc.ParseMinPrice(query.Get("min_price")),
		MaxPrice:        catalogsvc.ParseMaxPrice(query.Get("max_price")),
	}
}
