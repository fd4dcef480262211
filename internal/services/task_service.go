package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"task-management.com/task-management/internal/constants"
	apperrors "task-management.com/task-management/internal/errors"
	model "task-management.com/task-management/internal/models"
	repository "task-management.com/task-management/internal/repositories"
)

type TaskService struct {
	repo TaskRepository
	log  *logrus.Entry
	now  func() time.Time
}

// TaskUpdate carries the optional fields of a task update. A nil field was
// not supplied; a blank one is treated the same way.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

func NewTaskService(repo TaskRepository, log *logrus.Entry) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log.WithField("service", "tasks"),
		now:  utcNow,
	}
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) ListTasksByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// CreateTask stores a new task. The status always starts as Pending.
func (s *TaskService) CreateTask(ctx context.Context, title, description string, assignedToUserID uint) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	now := s.now()
	task := &model.Task{
		Title:            title,
		Description:      description,
		Status:           constants.StatusPending,
		AssignedToUserID: assignedToUserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrUnknownUser) {
			return nil, fmt.Errorf("user with id %d: %w", assignedToUserID, apperrors.ErrUnknownUser)
		}
		s.log.WithError(err).Error("failed to create task")
		return nil, err
	}

	return s.reload(ctx, task)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("task_id", id).Error("failed to update task")
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task with id %d: %w", id, apperrors.ErrTaskNotFound)
	}

	if v, ok := provided(update.Status); ok {
		status := constants.TaskStatus(v)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		task.Status = status
	}
	if v, ok := provided(update.Title); ok {
		task.Title = v
	}
	if v, ok := provided(update.Description); ok {
		task.Description = v
	}
	task.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, task); err != nil {
		s.log.WithError(err).WithField("task_id", id).Error("failed to update task")
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("task_id", id).Error("failed to delete task")
		return false, err
	}
	return deleted, nil
}

// reload fetches task back so the assigned user is populated.
func (s *TaskService) reload(ctx context.Context, task *model.Task) (*model.Task, error) {
	stored, err := s.repo.FindByID(ctx, task.ID)
	if err != nil {
		s.log.WithError(err).WithField("task_id", task.ID).Error("failed to reload task")
		return nil, err
	}
	if stored == nil {
		return task, nil
	}
	return stored, nil
}

func provided(v *string) (string, bool) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", false
	}
	return *v, true
}
