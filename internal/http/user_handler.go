package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-management.com/task-management/internal/constants"
	dto "task-management.com/task-management/internal/data_models"
	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/http/validators"
)

func (h *Handler) ListUsers(c echo.Context, id Identity) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, id, err, "failed to list users")
	}

	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context, id Identity) error {
	userID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid user id")
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, id, err, "failed to get user")
	}
	if user == nil {
		return h.fail(c, id, apperrors.ErrUserNotFound, "user not found")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context, id Identity) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, id, apperrors.ErrInvalidJSON, "invalid JSON payload")
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return h.fail(c, id, err, "invalid user request")
	}

	role := constants.RoleUser
	if req.Role != nil {
		role = constants.Role(*req.Role)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Name, req.Email, role)
	if err != nil {
		return h.fail(c, id, err, "failed to create user")
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%d", user.ID))
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c echo.Context, id Identity) error {
	userID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, id, apperrors.ErrInvalidJSON, "invalid JSON payload")
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), userID, req.Name, req.Email)
	if err != nil {
		return h.fail(c, id, err, "failed to update user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context, id Identity) error {
	userID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid user id")
	}

	deleted, err := h.userService.DeleteUser(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, id, err, "failed to delete user")
	}
	if !deleted {
		return h.fail(c, id, apperrors.ErrUserNotFound, "user not found")
	}

	h.log.WithField("deleted_user_id", userID).
		WithFields(identityFields(id)).
		Info("user deleted")

	return c.NoContent(http.StatusNoContent)
}
