package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/api/handler"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// Authorize lets the request through only when the caller's role grants
// permission. It must run after Authenticate.
func Authorize(permission domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := handler.IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
			}
			if !id.Role.Can(permission) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Insufficient role")
			}
			return next(c)
		}
	}
}
