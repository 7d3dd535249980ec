package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/contactly/clients-api/internal/api/metrics"
	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/ports"
)

// RateLimit throttles a route per caller using the given admission limiter.
// The caller key is the authenticated username; requests arriving without
// one (the middleware mounted before auth) fall back to the remote IP.
// A throttled request fails before any store access.
func RateLimit(limiter ports.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("username").(string)
			if key == "" {
				key = c.RealIP()
			}

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				return err
			}
			if !allowed {
				metrics.RequestsThrottledTotal.WithLabelValues(c.Path()).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
