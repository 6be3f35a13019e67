package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lwandile-dev/mzansimarket-backend/api/middleware"
	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	"github.com/lwandile-dev/mzansimarket-backend/api/validators"
	"github.com/lwandile-dev/mzansimarket-backend/internal/cart"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

type cartItemBody struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"min=0"`
}

type cartPayload struct {
	Items   []cart.Item  `json:"items"`
	Summary cart.Summary `json:"summary"`
}

func cartPayloadFor(store *cart.Store) cartPayload {
	return cartPayload{Items: store.Items(), Summary: store.Summary()}
}

// GetCart returns the session's cart lines plus the derived roll-up.
func GetCart(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}

// AddCartItem inserts a product or bumps its quantity when already present.
func AddCartItem(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		var body cartItemBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.AddItem(cart.ItemInput(body))
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}

// IncrementCartItem bumps the quantity of an existing line.
func IncrementCartItem(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.Increment(chi.URLParam(r, "itemID"))
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}

// DecrementCartItem lowers a line's quantity, dropping it at zero.
func DecrementCartItem(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.Decrement(chi.URLParam(r, "itemID"))
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}

// RemoveCartItem drops a line regardless of quantity.
func RemoveCartItem(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.RemoveItem(chi.URLParam(r, "itemID"))
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}

// ClearCart empties the session's cart.
func ClearCart(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}
		store := registry.Session(middleware.SessionKeyFromContext(r.Context()))
		store.Clear()
		responses.WriteSuccess(w, cartPayloadFor(store))
	}
}
