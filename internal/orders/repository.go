package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

type storage interface {
	Fetch(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Repository keeps exactly one current order under a fixed storage key.
// Saving overwrites any previously persisted order.
type Repository interface {
	SaveCurrent(ctx context.Context, order *Order) error
	Current(ctx context.Context) (*Order, error)
	ClearCurrent(ctx context.Context) error
}

type repository struct {
	storage storage
	key     string
	logg    *logger.Logger
}

// NewRepository builds the current-order repository. A missing storage
// handle is a construction-time error.
func NewRepository(store storage, key string, logg *logger.Logger) (Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("order storage is required")
	}
	if key == "" {
		return nil, fmt.Errorf("order storage key is required")
	}
	return &repository{storage: store, key: key, logg: logg}, nil
}

// SaveCurrent persists the order. Unlike cart writes this is not best
// effort: a submission whose order cannot be made durable fails.
func (r *repository) SaveCurrent(ctx context.Context, order *Order) error {
	if order == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "order must not be nil")
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serializing order")
	}
	if err := r.storage.Set(ctx, r.key, string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order")
	}
	return nil
}

// Current returns the persisted order. Absence, read errors and malformed
// payloads all come back as NOT_FOUND; the confirmation view redirects on
// that instead of surfacing an error.
func (r *repository) Current(ctx context.Context) (*Order, error) {
	raw, found, err := r.storage.Fetch(ctx, r.key)
	if err != nil {
		r.warn(ctx, "order read failed, treating as absent", err)
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no order placed yet")
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no order placed yet")
	}

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		r.warn(ctx, "persisted order is malformed, treating as absent", err)
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no order placed yet")
	}
	return &order, nil
}

// ClearCurrent removes the persisted order.
func (r *repository) ClearCurrent(ctx context.Context) error {
	if err := r.storage.Del(ctx, r.key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing order")
	}
	return nil
}

func (r *repository) warn(ctx context.Context, msg string, err error) {
	if r.logg == nil {
		return
	}
	r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), msg)
}
