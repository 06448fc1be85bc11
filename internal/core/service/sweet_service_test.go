package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func ptr[T any](v T) *T { return &v }

func TestSweetService_Create_Success(t *testing.T) {
	svc := NewSweetService(newMemSweetStore(), discardLogger)

	s, err := svc.Create(context.Background(), ports.CreateSweetInput{
		Name: "Ladoo", Category: "Indian", Price: 10.5, Quantity: 20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if s.ID == "" || s.Quantity != 20 || s.CreatedAt.IsZero() {
		t.Fatalf("unexpected sweet: %+v", s)
	}
}

func TestSweetService_Create_Validation(t *testing.T) {
	svc := NewSweetService(newMemSweetStore(), discardLogger)

	cases := []ports.CreateSweetInput{
		{Name: "", Category: "Indian", Price: 1, Quantity: 1},
		{Name: "Peda", Category: "", Price: 1, Quantity: 1},
		{Name: "Peda", Category: "Indian", Price: -1, Quantity: 1},
		{Name: "Peda", Category: "Indian", Price: 1, Quantity: -1},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
}

func TestSweetService_Create_DuplicateName(t *testing.T) {
	store := newMemSweetStore()
	store.seed("Barfi", 8, 2)
	svc := NewSweetService(store, discardLogger)

	_, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "Barfi", Category: "Indian", Price: 9, Quantity: 1})
	if !errors.Is(err, domain.ErrSweetExists) {
		t.Fatalf("expected ErrSweetExists, got %v", err)
	}
}

func TestSweetService_List_NewestFirst(t *testing.T) {
	store := newMemSweetStore()
	first := store.seed("Rasgulla", 10, 1)
	second := store.seed("Jalebi", 8, 1)
	svc := NewSweetService(store, discardLogger)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestSweetService_Search_PriceRangeInclusive(t *testing.T) {
	store := newMemSweetStore()
	store.seed("Jalebi", 8, 1)
	store.seed("Rasgulla", 10, 1)
	store.seed("Peda", 14, 1)
	store.seed("Kaju Katli", 20, 1)
	store.seed("Chocolate Truffle", 30, 1)
	svc := NewSweetService(store, discardLogger)

	got, err := svc.Search(context.Background(), domain.SweetFilter{MinPrice: ptr(10.0), MaxPrice: ptr(20.0)})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for _, s := range got {
		if s.Price < 10 || s.Price > 20 {
			t.Fatalf("price %v outside [10,20]", s.Price)
		}
	}
}

func TestSweetService_Search_InvalidRange(t *testing.T) {
	svc := NewSweetService(newMemSweetStore(), discardLogger)

	if _, err := svc.Search(context.Background(), domain.SweetFilter{MinPrice: ptr(20.0), MaxPrice: ptr(10.0)}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Search(context.Background(), domain.SweetFilter{MinPrice: ptr(-1.0)}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSweetService_Search_NonFiniteBounds(t *testing.T) {
	svc := NewSweetService(newMemSweetStore(), discardLogger)

	cases := map[string]domain.SweetFilter{
		"nan min":  {MinPrice: ptr(math.NaN())},
		"nan max":  {MaxPrice: ptr(math.NaN())},
		"inf max":  {MaxPrice: ptr(math.Inf(1))},
		"-inf min": {MinPrice: ptr(math.Inf(-1))},
	}
	for name, filter := range cases {
		if _, err := svc.Search(context.Background(), filter); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestSweetService_Update(t *testing.T) {
	store := newMemSweetStore()
	s := store.seed("Ladoo", 15, 10)
	svc := NewSweetService(store, discardLogger)

	updated, err := svc.Update(context.Background(), s.ID, domain.SweetPatch{Price: ptr(12.0), Quantity: ptr(3)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 12 || updated.Quantity != 3 {
		t.Fatalf("unexpected sweet: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), s.ID, domain.SweetPatch{Quantity: ptr(-1)}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "missing", domain.SweetPatch{Price: ptr(1.0)}); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetService_Delete(t *testing.T) {
	store := newMemSweetStore()
	s := store.seed("Peda", 14, 1)
	svc := NewSweetService(store, discardLogger)

	if err := svc.Delete(context.Background(), s.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), s.ID); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound on second delete, got %v", err)
	}

	list, _ := svc.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}
