package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// InventoryHandler exposes the stock mutations.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Purchase handles POST /api/sweets/:id/purchase.
//
// @Summary      Purchase units of a sweet
// @Description  Decrements stock only when enough units are available. An unknown id and insufficient stock return the same 400.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true   "Sweet id"
// @Param        body  body      amountRequest  false  "Units to buy, default 1"
// @Success      200   {object}  domain.Sweet
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *InventoryHandler) Purchase(c echo.Context) error {
	actor, ok := IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	amount, err := bindAmount(c, 1)
	if err != nil {
		return err
	}

	sweet, err := h.service.Purchase(c.Request().Context(), actor, c.Param("id"), amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweet)
}

// Restock handles POST /api/sweets/:id/restock.
//
// @Summary      Restock a sweet
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Sweet id"
// @Param        body  body      amountRequest  true  "Units to add"
// @Success      200   {object}  domain.Sweet
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *InventoryHandler) Restock(c echo.Context) error {
	actor, ok := IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	amount, err := bindAmount(c, 0)
	if err != nil {
		return err
	}

	sweet, err := h.service.Restock(c.Request().Context(), actor, c.Param("id"), amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweet)
}

// bindAmount reads the optional amount field. An empty body, a body that is
// not JSON, or a missing field yields def.
func bindAmount(c echo.Context, def int) (int, error) {
	var req amountRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, echo.ErrUnsupportedMediaType) {
			return def, nil
		}
		return 0, domain.NewValidationError("amount", "amount must be an integer")
	}
	if req.Amount == nil {
		return def, nil
	}
	return *req.Amount, nil
}
