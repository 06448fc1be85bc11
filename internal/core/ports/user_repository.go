package ports

import (
	"context"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// UserRepository defines credential persistence.
type UserRepository interface {
	// FindByEmail returns the user including its password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user without its password hash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts the user. A uniqueness violation yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
