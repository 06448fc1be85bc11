package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

func TestBuildSweetFilter_Empty(t *testing.T) {
	if f := buildSweetFilter(domain.SweetFilter{}); len(f) != 0 {
		t.Fatalf("expected empty filter, got %v", f)
	}
}

func TestBuildSweetFilter_EscapesAndIgnoresCase(t *testing.T) {
	f := buildSweetFilter(domain.SweetFilter{Name: "ka.ju", Category: "(indian"})

	name, ok := f["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex on name, got %T", f["name"])
	}
	if name.Pattern != `ka\.ju` || name.Options != "i" {
		t.Fatalf("unexpected name regex: %+v", name)
	}

	cat, ok := f["category"].(primitive.Regex)
	if !ok || cat.Pattern != `\(indian` {
		t.Fatalf("unexpected category regex: %+v", f["category"])
	}
}

func TestBuildSweetFilter_PriceBounds(t *testing.T) {
	lo, hi := 10.0, 20.0

	f := buildSweetFilter(domain.SweetFilter{MinPrice: &lo, MaxPrice: &hi})
	price, ok := f["price"].(bson.M)
	if !ok {
		t.Fatalf("expected price bounds, got %T", f["price"])
	}
	if price["$gte"] != 10.0 || price["$lte"] != 20.0 {
		t.Fatalf("unexpected bounds: %v", price)
	}

	f = buildSweetFilter(domain.SweetFilter{MaxPrice: &hi})
	price = f["price"].(bson.M)
	if _, ok := price["$gte"]; ok {
		t.Fatalf("absent minPrice must not constrain: %v", price)
	}
}

func TestParseSweetID(t *testing.T) {
	if _, err := parseSweetID("not-an-id"); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	oid := primitive.NewObjectID()
	got, err := parseSweetID(oid.Hex())
	if err != nil || got != oid {
		t.Fatalf("round trip failed: %v %v", got, err)
	}
}
