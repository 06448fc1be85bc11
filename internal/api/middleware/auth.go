package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/api/handler"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

const (
	msgMissingToken = "Not authorized: Missing token"
	msgInvalidToken = "Not authorized: Invalid token"
	msgUserNotFound = "Not authorized: User not found"
)

// Authenticate resolves the bearer token into the caller's identity. The user
// is looked up on every request so a deleted account loses access at once.
func Authenticate(verifier ports.TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			user, err := users.FindByID(c.Request().Context(), claims.ID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, msgUserNotFound)
				}
				return err
			}

			handler.SetIdentity(c, user.Identity())
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
