package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"task-management.com/task-management/internal/constants"
	apperrors "task-management.com/task-management/internal/errors"
	model "task-management.com/task-management/internal/models"
)

type UserService struct {
	repo UserRepository
	log  *logrus.Entry
	now  func() time.Time
}

func NewUserService(repo UserRepository, log *logrus.Entry) *UserService {
	return &UserService{
		repo: repo,
		log:  log.WithField("service", "users"),
		now:  utcNow,
	}
}

// GetUser returns nil without an error when the user does not exist.
func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to get user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list users")
		return nil, err
	}
	return users, nil
}

// CreateUser validates and stores a new user. Callers decide the default
// role; an empty role is rejected like any other unknown one.
func (s *UserService) CreateUser(ctx context.Context, name, email string, role constants.Role) (*model.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrNameAndEmailRequired
	}

	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	user := &model.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.log.WithError(err).Error("failed to create user")
		return nil, err
	}

	return user, nil
}

// UpdateUser overwrites name and email as given; the role is left alone.
func (s *UserService) UpdateUser(ctx context.Context, id uint, name, email string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to update user")
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user with id %d: %w", id, apperrors.ErrUserNotFound)
	}

	user.Name = name
	user.Email = email

	if err := s.repo.Update(ctx, user); err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to update user")
		return nil, err
	}

	return user, nil
}

// DeleteUser reports false when there was nothing to delete.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to delete user")
		return false, err
	}
	return deleted, nil
}
