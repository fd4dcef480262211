package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	middleware "task-management.com/task-management/internal/http/middlewares"
	"task-management.com/task-management/internal/ratelimit"
)

type ServerOptions struct {
	RateLimitPerMinute int
	Counter            ratelimit.Counter
	AllowedOrigins     []string
}

// NewServer builds the echo instance with the middleware stack and all routes.
func NewServer(h *Handler, opts ServerOptions, log *logrus.Entry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.AllowedOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			HeaderUserRole,
			HeaderUserID,
		},
	}))

	Register(e, h, opts.Counter, opts.RateLimitPerMinute, log)
	return e
}
