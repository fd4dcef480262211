package services

import (
	"context"
	"time"

	model "task-management.com/task-management/internal/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type TaskRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) (bool, error)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
