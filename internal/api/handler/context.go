package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

const identityKey = "sweetshop.identity"

// SetIdentity stores the authenticated caller on the request context.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller stored by the Authenticate middleware.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	if !ok || id.ID == "" {
		return domain.Identity{}, false
	}
	return id, true
}
