package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	"github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	"github.com/pedrolima/coffee-delivery-backend/internal/orders"
)

// memStorage is an in-memory stand-in for the Redis client in handler tests.
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
	switch v := value.(type) {
	case string:
		m.values[key] = v
	case []byte:
		m.values[key] = string(v)
	}
	return nil
}

func (m *memStorage) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

type testEnv struct {
	store    *cart.Store
	checkout checkout.Service
	repo     orders.Repository
	catalog  *catalog.Catalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	store, err := cart.NewStore(context.Background(), newMemStorage(), "coffee:cart", nil)
	if err != nil {
		t.Fatalf("new cart store: %v", err)
	}

	repo, err := orders.NewRepository(newMemStorage(), "coffee:last_order", nil)
	if err != nil {
		t.Fatalf("new order repository: %v", err)
	}

	svc, err := checkout.NewService(checkout.ServiceParams{
		Cart:        store,
		Catalog:     cat,
		Orders:      repo,
		DeliveryFee: decimal.RequireFromString("3.50"),
	})
	if err != nil {
		t.Fatalf("new checkout service: %v", err)
	}

	return &testEnv{store: store, checkout: svc, repo: repo, catalog: cat}
}
