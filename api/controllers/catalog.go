package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pedrolima/coffee-delivery-backend/api/responses"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

// ListProducts returns the full coffee catalog.
func ListProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := cat.List()
		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, newProductView(p))
		}
		responses.WriteSuccess(w, views)
	}
}

// GetProduct returns a single catalog entry by its numeric id.
func GetProduct(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := cat.FindByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, newProductView(product))
	}
}

func productIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	return id, nil
}
