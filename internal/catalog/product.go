package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. The catalog is read-only at runtime.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tags        Tags            `json:"tag"`
}

// Tags is a list of product labels. The source data carries either a single
// label or a list; the boundary normalizes both shapes to a list so nothing
// downstream special-cases arity.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Tags{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("tag must be a string or a list of strings: %w", err)
	}
	*t = Tags(many)
	return nil
}

func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t))
}
