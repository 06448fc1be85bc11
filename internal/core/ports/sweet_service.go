package ports

import (
	"context"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// CreateSweetInput carries the fields of a new sweet.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
	ImageURL string
}

type SweetService interface {
	Create(ctx context.Context, in CreateSweetInput) (*domain.Sweet, error)
	Get(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter domain.SweetFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}

// InventoryService adjusts stock. It does not check roles; callers must be authorized.
type InventoryService interface {
	Purchase(ctx context.Context, actor domain.Identity, id string, amount int) (*domain.Sweet, error)
	Restock(ctx context.Context, actor domain.Identity, id string, amount int) (*domain.Sweet, error)
}
