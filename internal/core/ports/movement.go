package ports

import (
	"context"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// MovementRepository persists the stock movement audit trail.
type MovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
	ListBySweet(ctx context.Context, sweetID string, limit int) ([]*domain.StockMovement, error)
}

// MovementService records and lists stock movements.
type MovementService interface {
	Record(ctx context.Context, m domain.StockMovement) error
	List(ctx context.Context, sweetID string) ([]*domain.StockMovement, error)
}

// MovementPublisher hands a movement off for asynchronous recording.
type MovementPublisher interface {
	Publish(m domain.StockMovement)
}
