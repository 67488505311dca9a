package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"lunchbox/backend/internal/logger"
)

// NewRateLimiter returns a process-wide limiter of qps requests per second
// with an equal burst, or nil when qps <= 0 (no limit).
func NewRateLimiter(qps int) *rate.Limiter {
	if qps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(qps), qps)
}

// RateLimitMiddleware rejects requests beyond the limiter's budget with the
// webhook's error envelope.
func RateLimitMiddleware(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || limiter.Allow() {
				return next(c)
			}
			logger.Warn("rate limited",
				"module", "http",
				"action", "request",
				"resource", "webhook",
				"result", "failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			return c.JSON(nethttp.StatusTooManyRequests, map[string]string{
				"status":  "error",
				"message": "too many requests",
			})
		}
	}
}
