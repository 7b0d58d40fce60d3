package controllers

import (
	"net/http"

	"github.com/pedrolima/coffee-delivery-backend/api/responses"
	"github.com/pedrolima/coffee-delivery-backend/api/validators"
	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

type addItemRequest struct {
	ID       int `json:"id" validate:"required,gt=0"`
	Quantity int `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// CartFetch returns the priced snapshot of the current cart.
func CartFetch(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(svc.Quote(r.Context())))
	}
}

// CartAddItem adds a product to the cart, merging with an existing line.
func CartAddItem(store *cart.Store, svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Add(r.Context(), payload.ID, payload.Quantity)
		responses.WriteSuccess(w, newCartView(svc.Quote(r.Context())))
	}
}

// CartIncreaseItem bumps the quantity of an existing line by one.
func CartIncreaseItem(store *cart.Store, svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Increase(r.Context(), id)
		responses.WriteSuccess(w, newCartView(svc.Quote(r.Context())))
	}
}

// CartDecreaseItem lowers the quantity of an existing line by one,
// removing the line when it reaches zero.
func CartDecreaseItem(store *cart.Store, svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Decrease(r.Context(), id)
		responses.WriteSuccess(w, newCartView(svc.Quote(r.Context())))
	}
}

// CartRemoveItem drops a line from the cart regardless of quantity.
func CartRemoveItem(store *cart.Store, svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(r.Context(), id)
		responses.WriteSuccess(w, newCartView(svc.Quote(r.Context())))
	}
}

// CartClear empties the cart.
func CartClear(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		store.Clear(r.Context())
		responses.WriteNoContent(w)
	}
}
