package controllers

import (
	"net/http"

	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	"github.com/lwandile-dev/mzansimarket-backend/api/validators"
	"github.com/lwandile-dev/mzansimarket-backend/internal/registrations"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

// SubmitVendorApplication stores a vendor onboarding form.
func SubmitVendorApplication(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registrations service unavailable"))
			return
		}
		var input registrations.VendorApplicationInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		receipt, err := svc.SubmitVendorApplication(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

// SubmitCipcRegistration stores a company-registration intake form.
func SubmitCipcRegistration(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registrations service unavailable"))
			return
		}
		var input registrations.CipcRegistrationInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		receipt, err := svc.SubmitCipcRegistration(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
