package controllers

import (
	"net/http"

	"github.com/pedrolima/coffee-delivery-backend/api/responses"
	"github.com/pedrolima/coffee-delivery-backend/api/validators"
	"github.com/pedrolima/coffee-delivery-backend/internal/cities"
	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

type selectCityRequest struct {
	Name  string `json:"name" validate:"required"`
	State string `json:"state" validate:"required,len=2"`
}

// ListCities returns the cities the storefront delivers to.
func ListCities(svc cities.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "city service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.List())
	}
}

// SelectedCity returns the active delivery city.
func SelectedCity(svc cities.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "city service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Selected(r.Context()))
	}
}

// SelectCity persists a new delivery city selection.
func SelectCity(svc cities.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "city service unavailable"))
			return
		}

		var payload selectCityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		city := cities.City{Name: payload.Name, State: payload.State}
		if err := svc.Select(r.Context(), city); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, city)
	}
}
