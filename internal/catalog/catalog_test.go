package catalog

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewLoadsEmbeddedCatalog(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	products := cat.List()
	if len(products) != 14 {
		t.Fatalf("expected 14 products, got %d", len(products))
	}

	espresso, ok := cat.FindByID(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if espresso.Title != "Expresso Tradicional" {
		t.Fatalf("unexpected title %q", espresso.Title)
	}
	if !espresso.Price.Equal(decimal.RequireFromString("9.9")) {
		t.Fatalf("unexpected price %s", espresso.Price)
	}

	if _, ok := cat.FindByID(999); ok {
		t.Fatal("expected unknown id to be absent")
	}
}

func TestTagsNormalizeSingleAndList(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	single, _ := cat.FindByID(1)
	if len(single.Tags) != 1 || single.Tags[0] != "TRADICIONAL" {
		t.Fatalf("expected single tag normalized to list, got %v", single.Tags)
	}

	multi, _ := cat.FindByID(11)
	if len(multi.Tags) != 3 {
		t.Fatalf("expected three tags, got %v", multi.Tags)
	}

	out, err := json.Marshal(single.Tags)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `["TRADICIONAL"]` {
		t.Fatalf("expected tags to marshal as a list, got %s", out)
	}
}

func TestTagsRejectInvalidShape(t *testing.T) {
	var tags Tags
	if err := json.Unmarshal([]byte(`42`), &tags); err == nil {
		t.Fatal("expected error for numeric tag")
	}
}

func TestNewFromJSONRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"duplicate id":   `[{"id":1,"title":"a","price":1,"tag":"X"},{"id":1,"title":"b","price":1,"tag":"X"}]`,
		"zero id":        `[{"id":0,"title":"a","price":1,"tag":"X"}]`,
		"negative price": `[{"id":1,"title":"a","price":-1,"tag":"X"}]`,
		"missing tags":   `[{"id":1,"title":"a","price":1}]`,
		"empty set":      `[]`,
		"not json":       `{`,
	}

	for name, payload := range cases {
		if _, err := newFromJSON([]byte(payload)); err == nil {
			t.Fatalf("%s: expected construction error", name)
		}
	}
}
