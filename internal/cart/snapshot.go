package cart

import (
	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
)

// SnapshotLine joins a cart line with its resolved product for display and
// pricing.
type SnapshotLine struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal is price times quantity for this line.
func (l SnapshotLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is a derived, on-demand view of the cart. Lines whose product id
// is absent from the catalog are silently dropped from the snapshot; the
// underlying store keeps them.
type Snapshot struct {
	Lines []SnapshotLine
}

// BuildSnapshot resolves each line against the catalog in cart order.
func BuildSnapshot(lines []Line, cat *catalog.Catalog) Snapshot {
	resolved := make([]SnapshotLine, 0, len(lines))
	for _, line := range lines {
		product, ok := cat.FindByID(line.ID)
		if !ok {
			continue
		}
		resolved = append(resolved, SnapshotLine{Product: product, Quantity: line.Quantity})
	}
	return Snapshot{Lines: resolved}
}

// Subtotal sums the per-line subtotals.
func (s Snapshot) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Empty reports whether the snapshot resolved to zero lines.
func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}
