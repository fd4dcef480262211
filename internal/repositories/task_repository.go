package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "task-management.com/task-management/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) withAssignee(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("AssignedUser")
}

// FindByID returns nil without an error when no task has the id.
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.withAssignee(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.withAssignee(ctx).Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.withAssignee(ctx).
		Where("assigned_to_user_id = ?", userID).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Omit("AssignedUser").Create(task).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownUser
	}
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"updated_at":  task.UpdatedAt,
		}).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
