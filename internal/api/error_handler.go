package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// errorResponse is the canonical error envelope. The dashboard reads message.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler maps domain errors to status codes and renders them as
// {"message": "..."}. Unknown errors are logged and never leak detail.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("http error")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid sweet id"
	case errors.Is(err, domain.ErrInsufficientStockOrNotFound):
		return http.StatusBadRequest, "Insufficient stock or sweet not found"
	case errors.Is(err, domain.ErrSweetNotFound):
		return http.StatusNotFound, "Sweet not found"
	case errors.Is(err, domain.ErrSweetExists):
		return http.StatusConflict, "Sweet with this name already exists"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Not authorized: Invalid token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "Not authorized: User not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
