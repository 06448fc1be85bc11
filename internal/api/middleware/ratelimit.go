package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/pkg/metrics"
	rediscache "github.com/sweetshop/sweet-inventory/internal/infrastructure/db/redis"
)

// Limiter counts a request against key.
type Limiter interface {
	Allow(ctx context.Context, key string) (*rediscache.RateLimitResult, error)
}

// RateLimit rejects callers that exceed the limiter's window with 429. The
// key is the client IP plus the matched route. When the limiter itself fails
// the request is let through.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			res, err := limiter.Allow(c.Request().Context(), c.RealIP()+":"+route)
			if err != nil {
				log.Warn().Err(err).Str("route", route).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			reset := strconv.Itoa(int(math.Ceil(res.ResetIn.Seconds())))
			h.Set("X-RateLimit-Reset", reset)

			if !res.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(route).Inc()
				h.Set("Retry-After", reset)
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
