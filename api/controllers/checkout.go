package controllers

import (
	"net/http"

	"github.com/pedrolima/coffee-delivery-backend/api/responses"
	"github.com/pedrolima/coffee-delivery-backend/api/validators"
	"github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

// Checkout validates the delivery address, places the order and
// returns the persisted record.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkout.AddressInput
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload.Normalize()
		if err := validators.Struct(&payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
