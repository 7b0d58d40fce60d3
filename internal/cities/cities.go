// Package cities tracks which delivery city the storefront displays. The
// selection is display only; it never participates in cart or order logic.
package cities

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

type City struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

var available = []City{
	{Name: "Goiânia", State: "GO"},
	{Name: "Senador Canedo", State: "GO"},
	{Name: "Caldas Novas", State: "GO"},
	{Name: "Brasília", State: "DF"},
}

type storage interface {
	Fetch(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service exposes the fixed city list and the persisted selection.
type Service interface {
	List() []City
	Selected(ctx context.Context) City
	Select(ctx context.Context, city City) error
}

type service struct {
	storage storage
	key     string
	logg    *logger.Logger
}

func NewService(store storage, key string, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("city storage is required")
	}
	if key == "" {
		return nil, fmt.Errorf("city storage key is required")
	}
	return &service{storage: store, key: key, logg: logg}, nil
}

func (s *service) List() []City {
	out := make([]City, len(available))
	copy(out, available)
	return out
}

// Selected returns the persisted choice, falling back to the first city on
// absence, read errors, malformed payloads, or a city no longer offered.
func (s *service) Selected(ctx context.Context) City {
	raw, found, err := s.storage.Fetch(ctx, s.key)
	if err != nil {
		s.warn(ctx, "city read failed, using default", err)
		return available[0]
	}
	if !found {
		return available[0]
	}

	var city City
	if err := json.Unmarshal([]byte(raw), &city); err != nil {
		s.warn(ctx, "persisted city is malformed, using default", err)
		return available[0]
	}
	if !isAvailable(city) {
		return available[0]
	}
	return city
}

// Select persists the choice. The write is best effort: losing it only
// resets the displayed city on the next restart.
func (s *service) Select(ctx context.Context, city City) error {
	if !isAvailable(city) {
		return pkgerrors.New(pkgerrors.CodeValidation, "city is not served").
			WithDetails(map[string]string{"city": fmt.Sprintf("%s, %s is not a delivery area", city.Name, city.State)})
	}

	payload, err := json.Marshal(city)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serializing city")
	}
	if err := s.storage.Set(ctx, s.key, string(payload), 0); err != nil {
		s.warn(ctx, "city write failed", err)
	}
	return nil
}

func isAvailable(city City) bool {
	for _, candidate := range available {
		if candidate == city {
			return true
		}
	}
	return false
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
}
