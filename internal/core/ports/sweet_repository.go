package ports

import (
	"context"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// SweetRepository defines persistence for sweets.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// List returns sweets matching filter, newest first.
	List(ctx context.Context, filter domain.SweetFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}

// StockRepository holds the only paths allowed to adjust quantity.
// Both operations must be single conditional updates in the store.
type StockRepository interface {
	// Decrement subtracts amount only when quantity >= amount.
	// No match yields domain.ErrInsufficientStockOrNotFound.
	Decrement(ctx context.Context, id string, amount int) (*domain.Sweet, error)
	// Increment adds amount. A missing sweet yields domain.ErrSweetNotFound.
	Increment(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}
