package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lwandile-dev/mzansimarket-backend/api/middleware"
	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	"github.com/lwandile-dev/mzansimarket-backend/api/validators"
	"github.com/lwandile-dev/mzansimarket-backend/internal/wishlist"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

type wishlistItemBody struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"min=0"`
}

type wishlistPayload struct {
	Items []wishlist.Item `json:"items"`
	Count int             `json:"count"`
}

type wishlistTogglePayload struct {
	Items []wishlist.Item `json:"items"`
	Count int             `json:"count"`
	Saved bool            `json:"saved"`
}

func wishlistPayloadFor(store *wishlist.Store) wishlistPayload {
	items := store.Items()
	return wishlistPayload{Items: items, Count: len(items)}
}

// GetWishlist returns the session's saved products.
func GetWishlist(registry *wishlist.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		responses.WriteSuccess(w, wishlistPayloadFor(store))
	}
}

// ToggleWishlistItem adds the product when absent and removes it when present.
func ToggleWishlistItem(registry *wishlist.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist registry unavailable"))
			return
		}
		var body wishlistItemBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		saved := store.Toggle(wishlist.Item(body))
		items := store.Items()
		responses.WriteSuccess(w, wishlistTogglePayload{Items: items, Count: len(items), Saved: saved})
	}
}

// RemoveWishlistItem drops the product if present.
func RemoveWishlistItem(registry *wishlist.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.RemoveItem(chi.URLParam(r, "itemID"))
		responses.WriteSuccess(w, wishlistPayloadFor(store))
	}
}

// ClearWishlist empties the session's wishlist.
func ClearWishlist(registry *wishlist.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.Clear()
		responses.WriteSuccess(w, wishlistPayloadFor(store))
	}
}
