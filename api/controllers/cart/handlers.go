package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tcgperu/storefront-backend/api/middleware"
	"github.com/tcgperu/storefront-backend/api/responses"
	"github.com/tcgperu/storefront-backend/api/validators"
	cartsvc "github.com/tcgperu/storefront-backend/internal/cart"
	catalogsvc "github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/internal/checkout"
	"github.com/tcgperu/storefront-backend/pkg/config"
	pkgerrors "github.com/tcgperu/storefront-backend/pkg/errors"
	"github.com/tcgperu/storefront-backend/pkg/logger"
)

// AddItemRequest adds one unit of the referenced catalog item.
type AddItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// ChangeQuantityRequest adjusts a line's quantity by a signed delta.
// A zero delta leaves the line as it is.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartFetch returns the session's current lines and totals.
func CartFetch(carts *cartsvc.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartAddItem captures the catalog item's snapshot into the cart.
// Adding an id the catalog does not know is NOT_FOUND; duplicate adds
// increment the existing line.
func CartAddItem(carts *cartsvc.Registry, index *catalogsvc.Index, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := index.Get(payload.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}

		store.Add(cartsvc.Snapshot{
			ItemID:  item.ID,
			Name:    item.Name,
			Price:   item.Price,
			Image:   item.Image,
			Details: item.Details,
		})

		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartChangeQuantity applies a signed delta to the addressed line. A
// resulting quantity of zero or below removes the line; an unknown id
// is a no-op rather than an error.
func CartChangeQuantity(carts *cartsvc.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload ChangeQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.ChangeQuantity(chi.URLParam(r, "itemID"), payload.Delta)

		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartRemoveItem deletes the addressed line; absent ids are a no-op.
func CartRemoveItem(carts *cartsvc.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(chi.URLParam(r, "itemID"))

		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartClear empties the session's cart.
func CartClear(carts *cartsvc.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()

		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// CartCheckout composes the order summary and the hand-off URL for the
// external messaging channel. An empty cart is the one recoverable
// error: it surfaces to the client and no hand-off URL is produced.
func CartCheckout(carts *cartsvc.Registry, checkoutCfg config.CheckoutConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := checkout.BuildMessage(store.Items(), checkoutCfg.CurrencySymbol)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handoffURL, err := checkout.HandoffURL(checkoutCfg.ChannelURL, message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, CheckoutResponse{
			Message:    message,
			HandoffURL: handoffURL,
		})
	}
}

func sessionStore(r *http.Request, carts *cartsvc.Registry) (*cartsvc.Store, error) {
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return carts.Get(sessionID), nil
}
