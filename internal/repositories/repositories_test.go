package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-management.com/task-management/internal/constants"
	model "task-management.com/task-management/internal/models"
	"task-management.com/task-management/internal/testutil"
)

func createUser(t *testing.T, repo *UserRepository, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:      name,
		Email:     name + "@example.com",
		Role:      constants.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createTask(t *testing.T, repo *TaskRepository, title string, userID uint) *model.Task {
	t.Helper()
	now := time.Now().UTC()
	task := &model.Task{
		Title:            title,
		Status:           constants.StatusPending,
		AssignedToUserID: userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func TestUserRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "alice")
	require.NotZero(t, user.ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Name)
	assert.Equal(t, constants.RoleUser, found.Role)

	found.Name = ""
	found.Email = "new@example.com"
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "", found.Name)
	assert.Equal(t, "new@example.com", found.Email)

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_MissingRows(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	found, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err := repo.Delete(ctx, 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	createUser(t, repo, "bob")
	createUser(t, repo, "carol")

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Name)
	assert.Equal(t, "carol", users[1].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestTaskRepository_PreloadsAssignedUser(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "dave")
	task := createTask(t, tasks, "Build API", owner.ID)

	found, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, found.AssignedUser)
	assert.Equal(t, owner.ID, found.AssignedUser.ID)
	assert.Equal(t, "dave", found.AssignedUser.Name)

	all, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].AssignedUser)
}

func TestTaskRepository_ListByUserID(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	erin := createUser(t, users, "erin")
	frank := createUser(t, users, "frank")
	createTask(t, tasks, "one", erin.ID)
	createTask(t, tasks, "two", frank.ID)
	createTask(t, tasks, "three", erin.ID)

	got, err := tasks.ListByUserID(ctx, erin.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, task := range got {
		assert.Equal(t, erin.ID, task.AssignedToUserID)
	}

	got, err = tasks.ListByUserID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTaskRepository_UpdateOverwritesMutableFields(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "gina")
	task := createTask(t, tasks, "draft", owner.ID)

	task.Title = "final"
	task.Status = constants.StatusCompleted
	task.UpdatedAt = task.UpdatedAt.Add(time.Minute)
	require.NoError(t, tasks.Update(ctx, task))

	found, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", found.Title)
	assert.Equal(t, constants.StatusCompleted, found.Status)
	assert.WithinDuration(t, task.UpdatedAt, found.UpdatedAt, time.Millisecond)
}

func TestTaskRepository_CreateWithUnknownUser(t *testing.T) {
	tasks := NewTaskRepository(testutil.NewDB(t))
	now := time.Now().UTC()

	err := tasks.Create(context.Background(), &model.Task{
		Title:            "orphan",
		Status:           constants.StatusPending,
		AssignedToUserID: 404,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestUserRepository_DeleteCascadesToTasks(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "hank")
	task := createTask(t, tasks, "doomed", owner.ID)
	other := createUser(t, users, "ivy")
	kept := createTask(t, tasks, "kept", other.ID)

	deleted, err := users.Delete(ctx, owner.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = tasks.FindByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
