package controllers

import (
	"net/http"

	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	"github.com/lwandile-dev/mzansimarket-backend/internal/marketplace"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

// MarketplaceInventory serves the public storefront listings and categories.
func MarketplaceInventory(svc marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketplace service unavailable"))
			return
		}
		limit, err := optionalLimit(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		inventory, err := svc.Inventory(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, inventory)
	}
}

// FeaturedProducts serves the short storefront highlight strip.
func FeaturedProducts(svc marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketplace service unavailable"))
			return
		}
		limit, err := optionalLimit(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		featured, err := svc.FeaturedProducts(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, featured)
	}
}
