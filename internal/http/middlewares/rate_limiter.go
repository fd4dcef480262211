package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"task-management.com/task-management/internal/ratelimit"
)

// RateLimiter allows limit requests per client IP per window. When the
// counter backend fails the request is let through.
func RateLimiter(counter ratelimit.Counter, limit int, window time.Duration, log *logrus.Entry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			count, err := counter.Hit(c.Request().Context(), key, window)
			if err != nil {
				log.WithError(err).WithField("client_ip", key).Warn("rate limiter unavailable")
				return next(c)
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
