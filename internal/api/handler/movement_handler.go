package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

type MovementHandler struct {
	service ports.MovementService
}

func NewMovementHandler(service ports.MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

// List handles GET /api/sweets/:id/movements.
//
// @Summary      Stock movement history of a sweet
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {array}   domain.StockMovement
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/movements [get]
func (h *MovementHandler) List(c echo.Context) error {
	movements, err := h.service.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if movements == nil {
		movements = []*domain.StockMovement{}
	}
	return c.JSON(http.StatusOK, movements)
}
