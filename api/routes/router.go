package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pedrolima/coffee-delivery-backend/api/controllers"
	"github.com/pedrolima/coffee-delivery-backend/api/middleware"
	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	checkoutsvc "github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	citysvc "github.com/pedrolima/coffee-delivery-backend/internal/cities"
	"github.com/pedrolima/coffee-delivery-backend/internal/orders"
	"github.com/pedrolima/coffee-delivery-backend/pkg/config"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
	"github.com/pedrolima/coffee-delivery-backend/pkg/metrics"
)

// Deps collects everything the router hands to the controllers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Catalog      *catalog.Catalog
	Cart         *cart.Store
	Checkout     checkoutsvc.Service
	Orders       orders.Repository
	Archive      orders.Archive
	Cities       citysvc.Service
	HTTPMetrics  *metrics.HTTPMetrics
	Registry     *prometheus.Registry
	HealthProbes []controllers.Pinger
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.HealthProbes...))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{productId}", controllers.GetProduct(deps.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Checkout, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, deps.Checkout, logg))
			r.Route("/items/{productId}", func(r chi.Router) {
				r.Delete("/", controllers.CartRemoveItem(deps.Cart, deps.Checkout, logg))
				r.Post("/increase", controllers.CartIncreaseItem(deps.Cart, deps.Checkout, logg))
				r.Post("/decrease", controllers.CartDecreaseItem(deps.Cart, deps.Checkout, logg))
			})
		})

		r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/last", controllers.LastOrder(deps.Orders, logg))
			r.Delete("/last", controllers.ClearLastOrder(deps.Orders, logg))
			r.Get("/history", controllers.OrderHistory(deps.Archive, logg))
		})

		r.Route("/cities", func(r chi.Router) {
			r.Get("/", controllers.ListCities(deps.Cities, logg))
			r.Get("/selected", controllers.SelectedCity(deps.Cities, logg))
			r.Put("/selected", controllers.SelectCity(deps.Cities, logg))
		})
	})

	return r
}
