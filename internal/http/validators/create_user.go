package validators

import (
	dto "task-management.com/task-management/internal/data_models"
	apperrors "task-management.com/task-management/internal/errors"
)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	if r.Role != nil && *r.Role == "" {
		return apperrors.ErrInvalidRole
	}
	return nil
}
