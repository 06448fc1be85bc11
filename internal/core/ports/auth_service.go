package ports

import (
	"context"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier resolves a bearer token into the identity it was issued for.
// Only ID and Role are populated.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
