package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-management.com/task-management/internal/data_models"
	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/http/validators"
	"task-management.com/task-management/internal/services"
)

func (h *Handler) ListTasks(c echo.Context, id Identity) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return h.fail(c, id, err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ListUserTasks(c echo.Context, id Identity) error {
	userID, err := validators.ParseID(c, "userId")
	if err != nil {
		return h.fail(c, id, err, "invalid user id")
	}

	tasks, err := h.taskService.ListTasksByUser(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, id, err, "failed to list user tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context, id Identity) error {
	taskID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid task id")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return h.fail(c, id, err, "failed to get task")
	}
	if task == nil {
		return h.fail(c, id, apperrors.ErrTaskNotFound, "task not found")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context, id Identity) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, id, apperrors.ErrInvalidJSON, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return h.fail(c, id, err, "invalid task request")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.Description, req.AssignedToUserID)
	if err != nil {
		return h.fail(c, id, err, "failed to create task")
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/tasks/%d", task.ID))
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context, id Identity) error {
	taskID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, id, apperrors.ErrInvalidJSON, "invalid JSON payload")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), taskID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return h.fail(c, id, err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context, id Identity) error {
	taskID, err := validators.ParseID(c, "id")
	if err != nil {
		return h.fail(c, id, err, "invalid task id")
	}

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), taskID)
	if err != nil {
		return h.fail(c, id, err, "failed to delete task")
	}
	if !deleted {
		return h.fail(c, id, apperrors.ErrTaskNotFound, "task not found")
	}

	return c.NoContent(http.StatusNoContent)
}
