package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user's id and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the encoded identity.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, errors.Join(domain.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return domain.Identity{ID: claims.Subject, Role: role}, nil
}
