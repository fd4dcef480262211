package http

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/services"
)

type Handler struct {
	userService *services.UserService
	taskService *services.TaskService
	log         *logrus.Entry
}

func NewHandler(userService *services.UserService, taskService *services.TaskService, log *logrus.Entry) *Handler {
	return &Handler{
		userService: userService,
		taskService: taskService,
		log:         log,
	}
}

// identityFields describes the caller for log entries.
func identityFields(id Identity) logrus.Fields {
	if !id.Known() {
		return logrus.Fields{"caller": "anonymous"}
	}
	return logrus.Fields{
		"user_role": id.Role,
		"user_id":   id.UserID,
	}
}

// fail converts err into an HTTP error. Only unclassified errors are logged
// here; the services already logged them with context.
func (h *Handler) fail(c echo.Context, id Identity, err error, msg string) error {
	code := apperrors.StatusCode(err)
	if code >= 500 {
		h.log.WithError(err).
			WithField("path", c.Path()).
			WithFields(identityFields(id)).
			Error(msg)
	}
	return echo.NewHTTPError(code, apperrors.Message(err))
}
