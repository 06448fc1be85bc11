package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// SweetHandler serves the product catalogue.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /api/sweets.
//
// @Summary      Create a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet"
// @Success      201   {object}  domain.Sweet
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sweet, err := h.service.Create(c.Request().Context(), ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Quantity: *req.Quantity,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sweet)
}

// List handles GET /api/sweets.
//
// @Summary      List sweets, newest first
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Sweet
// @Failure      401  {object}  errorResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(sweets))
}

// Search handles GET /api/sweets/search.
//
// @Summary      Search sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Case-insensitive name substring"
// @Param        category  query     string  false  "Case-insensitive category substring"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {array}   domain.Sweet
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(sweets))
}

// Get handles GET /api/sweets/:id.
//
// @Summary      Get a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  domain.Sweet
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) Get(c echo.Context) error {
	sweet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweet)
}

// Update handles PUT /api/sweets/:id.
//
// @Summary      Update a sweet
// @Description  Partial update. A quantity in the body overwrites stock directly.
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to change"
// @Success      200   {object}  domain.Sweet
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweet)
}

// Delete handles DELETE /api/sweets/:id.
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sweet deleted"})
}

func parseFilter(c echo.Context) (domain.SweetFilter, error) {
	filter := domain.SweetFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	b := echo.QueryParamsBinder(c)
	if c.QueryParam("minPrice") != "" {
		var v float64
		b.Float64("minPrice", &v)
		filter.MinPrice = &v
	}
	if c.QueryParam("maxPrice") != "" {
		var v float64
		b.Float64("maxPrice", &v)
		filter.MaxPrice = &v
	}

	if err := b.BindError(); err != nil {
		field := "query"
		var be *echo.BindingError
		if errors.As(err, &be) {
			field = be.Field
		}
		return domain.SweetFilter{}, domain.NewValidationError(field, field+" must be a number")
	}
	return filter, nil
}

func nonNil(sweets []*domain.Sweet) []*domain.Sweet {
	if sweets == nil {
		return []*domain.Sweet{}
	}
	return sweets
}
