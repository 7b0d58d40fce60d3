package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed coffees.json
var coffeesJSON []byte

// Catalog holds the product list, loaded once at process start.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New loads the embedded product data. A malformed or inconsistent data set
// is a construction-time error; the process refuses to start on one.
func New() (*Catalog, error) {
	return newFromJSON(coffeesJSON)
}

func newFromJSON(data []byte) (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decoding catalog data: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog data is empty")
	}

	byID := make(map[int]Product, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q has non-positive id %d", p.Title, p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("product %d has non-positive price %s", p.ID, p.Price)
		}
		if len(p.Tags) == 0 {
			return nil, fmt.Errorf("product %d has no tags", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// List returns the products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID returns the product with the given id, if present.
func (c *Catalog) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
