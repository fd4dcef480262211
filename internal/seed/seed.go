package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"task-management.com/task-management/internal/constants"
	"task-management.com/task-management/internal/services"
)

//go:embed default.yaml
var defaultFixtures []byte

type Fixtures struct {
	Users []UserFixture `yaml:"users"`
	Tasks []TaskFixture `yaml:"tasks"`
}

type UserFixture struct {
	Ref   string `yaml:"ref"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type TaskFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Assignee    string `yaml:"assignee"`
}

type Result struct {
	Users   int
	Tasks   int
	Skipped bool
}

func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	refs := make(map[string]struct{}, len(f.Users))
	for _, u := range f.Users {
		if u.Ref == "" {
			return nil, fmt.Errorf("user %q has no ref", u.Name)
		}
		if _, dup := refs[u.Ref]; dup {
			return nil, fmt.Errorf("duplicate user ref %q", u.Ref)
		}
		refs[u.Ref] = struct{}{}
	}
	for _, t := range f.Tasks {
		if _, ok := refs[t.Assignee]; !ok {
			return nil, fmt.Errorf("task %q references unknown user %q", t.Title, t.Assignee)
		}
	}

	return &f, nil
}

type Seeder struct {
	users *services.UserService
	tasks *services.TaskService
	log   *logrus.Entry
}

func NewSeeder(users *services.UserService, tasks *services.TaskService, log *logrus.Entry) *Seeder {
	return &Seeder{users: users, tasks: tasks, log: log}
}

// Run loads f through the services so the usual validation applies. It does
// nothing when any user already exists.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (Result, error) {
	existing, err := s.users.ListUsers(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(existing) > 0 {
		s.log.WithField("users", len(existing)).Info("database already populated, skipping seed")
		return Result{Skipped: true}, nil
	}

	var res Result
	ids := make(map[string]uint, len(f.Users))

	for _, u := range f.Users {
		role := constants.RoleUser
		if u.Role != "" {
			role = constants.Role(u.Role)
		}

		user, err := s.users.CreateUser(ctx, u.Name, u.Email, role)
		if err != nil {
			return res, fmt.Errorf("seed user %q: %w", u.Ref, err)
		}
		ids[u.Ref] = user.ID
		res.Users++
	}

	for _, t := range f.Tasks {
		task, err := s.tasks.CreateTask(ctx, t.Title, t.Description, ids[t.Assignee])
		if err != nil {
			return res, fmt.Errorf("seed task %q: %w", t.Title, err)
		}

		if t.Status != "" && constants.TaskStatus(t.Status) != task.Status {
			status := t.Status
			if _, err := s.tasks.UpdateTask(ctx, task.ID, services.TaskUpdate{Status: &status}); err != nil {
				return res, fmt.Errorf("seed task %q status: %w", t.Title, err)
			}
		}
		res.Tasks++
	}

	s.log.WithFields(logrus.Fields{"users": res.Users, "tasks": res.Tasks}).Info("seed data loaded")
	return res, nil
}
