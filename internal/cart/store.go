package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

// Line is one persisted cart entry. Quantity is never observable at or
// below zero; a decrement that would reach zero removes the line.
type Line struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type storage interface {
	Fetch(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Store owns the session's cart line set and keeps it durable under a fixed
// storage key. It is handed by reference to whichever handler needs it.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	storage storage
	key     string
	logg    *logger.Logger
}

// NewStore seeds the line set from storage before returning, so the first
// mutation can never overwrite previously saved state with an empty set.
// A missing storage handle is a construction-time precondition violation.
func NewStore(ctx context.Context, store storage, key string, logg *logger.Logger) (*Store, error) {
	if store == nil {
		return nil, fmt.Errorf("cart storage is required")
	}
	if key == "" {
		return nil, fmt.Errorf("cart storage key is required")
	}
	s := &Store{storage: store, key: key, logg: logg}
	s.lines = s.load(ctx)
	return s, nil
}

// load reads the persisted line set. Absence, read errors and malformed
// payloads all seed an empty cart; none of them surface to the caller.
func (s *Store) load(ctx context.Context) []Line {
	raw, found, err := s.storage.Fetch(ctx, s.key)
	if err != nil {
		s.warn(ctx, "cart read failed, starting empty", err)
		return nil
	}
	if !found {
		return nil
	}

	var saved []Line
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.warn(ctx, "persisted cart is malformed, starting empty", err)
		return nil
	}

	// Drop anything a previous writer should never have produced.
	seen := make(map[int]struct{}, len(saved))
	lines := make([]Line, 0, len(saved))
	for _, line := range saved {
		if line.Quantity <= 0 {
			continue
		}
		if _, dup := seen[line.ID]; dup {
			continue
		}
		seen[line.ID] = struct{}{}
		lines = append(lines, line)
	}
	return lines
}

// Add merges quantity into an existing line or appends a new one. A
// quantity below one is treated as one, matching the storefront's
// default add. Product ids are not checked against the catalog here;
// unknown ids simply never resolve to a display row.
func (s *Store) Add(ctx context.Context, id, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}
	s.lines = append(s.lines, Line{ID: id, Quantity: quantity})
	s.persist(ctx)
}

// Increase increments the matching line by one. No-op when absent.
func (s *Store) Increase(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity++
			s.persist(ctx)
			return
		}
	}
}

// Decrease decrements the matching line by one, removing it when the
// quantity would drop to zero. No-op when absent.
func (s *Store) Decrease(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		s.lines[i].Quantity--
		if s.lines[i].Quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		s.persist(ctx)
		return
	}
}

// Remove deletes the line unconditionally, regardless of quantity.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the entire line set.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// Lines returns a copy of the current line set in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalQuantity sums all line quantities. Always recomputed, never stored.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// persist writes the full line set to storage. Best effort: failures are
// logged and swallowed. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		s.warn(ctx, "cart serialization failed", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, string(payload), 0); err != nil {
		s.warn(ctx, "cart write failed", err)
	}
}

func (s *Store) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
}
