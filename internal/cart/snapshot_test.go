package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return cat
}

func TestBuildSnapshotResolvesProducts(t *testing.T) {
	cat := testCatalog(t)

	snapshot := BuildSnapshot([]Line{{ID: 1, Quantity: 2}}, cat)
	if len(snapshot.Lines) != 1 {
		t.Fatalf("expected one resolved line, got %d", len(snapshot.Lines))
	}

	line := snapshot.Lines[0]
	if line.Product.Title != "Expresso Tradicional" {
		t.Fatalf("unexpected product %q", line.Product.Title)
	}
	if !line.Subtotal().Equal(decimal.RequireFromString("19.80")) {
		t.Fatalf("unexpected line subtotal %s", line.Subtotal())
	}
	if !snapshot.Subtotal().Equal(decimal.RequireFromString("19.80")) {
		t.Fatalf("unexpected cart subtotal %s", snapshot.Subtotal())
	}
}

func TestBuildSnapshotDropsUnknownIDs(t *testing.T) {
	cat := testCatalog(t)

	lines := []Line{{ID: 999, Quantity: 1}, {ID: 2, Quantity: 1}}
	snapshot := BuildSnapshot(lines, cat)

	if len(snapshot.Lines) != 1 || snapshot.Lines[0].Product.ID != 2 {
		t.Fatalf("expected only known ids in snapshot, got %+v", snapshot.Lines)
	}
}

func TestEmptySnapshot(t *testing.T) {
	cat := testCatalog(t)

	snapshot := BuildSnapshot(nil, cat)
	if !snapshot.Empty() {
		t.Fatal("expected empty snapshot")
	}
	if !snapshot.Subtotal().IsZero() {
		t.Fatalf("expected zero subtotal, got %s", snapshot.Subtotal())
	}
}
