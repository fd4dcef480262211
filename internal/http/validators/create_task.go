package validators

import (
	dto "task-management.com/task-management/internal/data_models"
	apperrors "task-management.com/task-management/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.AssignedToUserID == 0 {
		return apperrors.ErrAssigneeRequired
	}
	return nil
}
