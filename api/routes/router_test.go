package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/api/controllers"
	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	checkoutsvc "github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	citysvc "github.com/pedrolima/coffee-delivery-backend/internal/cities"
	"github.com/pedrolima/coffee-delivery-backend/internal/orders"
	"github.com/pedrolima/coffee-delivery-backend/pkg/config"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
	"github.com/pedrolima/coffee-delivery-backend/pkg/metrics"
)

type memStorage struct {
	values map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Fetch(ctx context.Context, key string) (string, bool, error) {
	raw, ok := m.values[key]
	return raw, ok, nil
}

func (m *memStorage) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s, ok := value.(string); ok {
		m.values[key] = s
	}
	return nil
}

func (m *memStorage) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubArchive struct{}

func (stubArchive) Save(ctx context.Context, order *orders.Order) error {
	return nil
}

func (stubArchive) Recent(ctx context.Context, limit int) ([]orders.Order, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	store, err := cart.NewStore(context.Background(), newMemStorage(), "coffee:cart", logg)
	if err != nil {
		t.Fatalf("new cart store: %v", err)
	}

	repo, err := orders.NewRepository(newMemStorage(), "coffee:last_order", logg)
	if err != nil {
		t.Fatalf("new order repository: %v", err)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:        store,
		Catalog:     cat,
		Orders:      repo,
		Archive:     stubArchive{},
		DeliveryFee: decimal.RequireFromString("3.50"),
		Logger:      logg,
	})
	if err != nil {
		t.Fatalf("new checkout service: %v", err)
	}

	cityService, err := citysvc.NewService(newMemStorage(), "coffee:selected_city", logg)
	if err != nil {
		t.Fatalf("new city service: %v", err)
	}

	registry := prometheus.NewRegistry()

	return NewRouter(Deps{
		Config:       &config.Config{App: config.AppConfig{Env: "test"}},
		Logger:       logg,
		Catalog:      cat,
		Cart:         store,
		Checkout:     checkoutService,
		Orders:       repo,
		Archive:      stubArchive{},
		Cities:       cityService,
		HTTPMetrics:  metrics.NewHTTPMetrics(registry),
		Registry:     registry,
		HealthProbes: []controllers.Pinger{stubPinger{}},
	})
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	if resp := do(t, router, http.MethodGet, "/health/live", ""); resp.Code != http.StatusOK {
		t.Fatalf("live: expected 200 got %d", resp.Code)
	}
	if resp := do(t, router, http.MethodGet, "/health/ready", ""); resp.Code != http.StatusOK {
		t.Fatalf("ready: expected 200 got %d", resp.Code)
	}
	if resp := do(t, router, http.MethodGet, "/metrics", ""); resp.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200 got %d", resp.Code)
	}
}

func TestRouterStorefrontFlow(t *testing.T) {
	router := newTestRouter(t)

	if resp := do(t, router, http.MethodGet, "/api/v1/products", ""); resp.Code != http.StatusOK {
		t.Fatalf("products: expected 200 got %d", resp.Code)
	}

	resp := do(t, router, http.MethodPost, "/api/v1/cart/items", `{"id": 1, "quantity": 2}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("add item: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = do(t, router, http.MethodPost, "/api/v1/cart/items/1/increase", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("increase: expected 200 got %d", resp.Code)
	}

	resp = do(t, router, http.MethodGet, "/api/v1/cart", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("cart: expected 200 got %d", resp.Code)
	}
	var cartEnvelope struct {
		Data struct {
			TotalQuantity int    `json:"total_quantity"`
			Total         string `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cartEnvelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cartEnvelope.Data.TotalQuantity != 3 {
		t.Fatalf("expected quantity 3 got %d", cartEnvelope.Data.TotalQuantity)
	}

	checkoutBody := `{
		"cep": "74000000",
		"rua": "Rua das Acácias",
		"numero": "120",
		"bairro": "Setor Bueno",
		"cidade": "Goiânia",
		"uf": "GO",
		"pagamento": "dinheiro"
	}`
	resp = do(t, router, http.MethodPost, "/api/v1/checkout", checkoutBody)
	if resp.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	if resp := do(t, router, http.MethodGet, "/api/v1/orders/last", ""); resp.Code != http.StatusOK {
		t.Fatalf("last order: expected 200 got %d", resp.Code)
	}

	resp = do(t, router, http.MethodGet, "/api/v1/cart", "")
	if err := json.NewDecoder(resp.Body).Decode(&cartEnvelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cartEnvelope.Data.TotalQuantity != 0 {
		t.Fatalf("cart should be empty after checkout, quantity %d", cartEnvelope.Data.TotalQuantity)
	}

	if resp := do(t, router, http.MethodDelete, "/api/v1/orders/last", ""); resp.Code != http.StatusNoContent {
		t.Fatalf("clear order: expected 204 got %d", resp.Code)
	}
	if resp := do(t, router, http.MethodGet, "/api/v1/orders/last", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("cleared order: expected 404 got %d", resp.Code)
	}
}

func TestRouterCities(t *testing.T) {
	router := newTestRouter(t)

	if resp := do(t, router, http.MethodGet, "/api/v1/cities", ""); resp.Code != http.StatusOK {
		t.Fatalf("cities: expected 200 got %d", resp.Code)
	}
	resp := do(t, router, http.MethodPut, "/api/v1/cities/selected", `{"name": "Caldas Novas", "state": "GO"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("select city: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	resp = do(t, router, http.MethodGet, "/api/v1/cities/selected", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("selected city: expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Caldas Novas") {
		t.Fatalf("unexpected selection payload: %s", resp.Body.String())
	}
}
