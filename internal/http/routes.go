package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	middleware "task-management.com/task-management/internal/http/middlewares"
	"task-management.com/task-management/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, counter ratelimit.Counter, rateLimitPerMinute int, log *logrus.Entry) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api", middleware.RateLimiter(counter, rateLimitPerMinute, time.Minute, log))

	api.GET("/users", withIdentity(h.ListUsers))
	api.GET("/users/:id", withIdentity(h.GetUser))
	api.POST("/users", withIdentity(h.CreateUser))
	api.PUT("/users/:id", withIdentity(h.UpdateUser))
	api.DELETE("/users/:id", withIdentity(h.DeleteUser))

	api.GET("/tasks", withIdentity(h.ListTasks))
	api.GET("/tasks/user/:userId", withIdentity(h.ListUserTasks))
	api.GET("/tasks/:id", withIdentity(h.GetTask))
	api.POST("/tasks", withIdentity(h.CreateTask))
	api.PUT("/tasks/:id", withIdentity(h.UpdateTask))
	api.DELETE("/tasks/:id", withIdentity(h.DeleteTask))
}
