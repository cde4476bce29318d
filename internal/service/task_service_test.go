package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
)

// newTestService builds a TaskService on fresh in-memory stores seeded with
// a single user John Doe (ID 1). Returns the service and the stores for
// direct inspection.
func newTestService(t *testing.T) (TaskService, *memory.TaskStore, *memory.UserStore) {
	t.Helper()

	taskStore := memory.NewTaskStore()
	userStore := memory.NewUserStore()

	_, err := userStore.Create(context.Background(), &domain.User{
		Name:  "John Doe",
		Email: "john@example.com",
	})
	require.NoError(t, err)

	svc, err := NewTaskService(taskStore, userStore, slog.Default())
	require.NoError(t, err)

	return svc, taskStore, userStore
}

func TestNewTaskService(t *testing.T) {
	taskStore := memory.NewTaskStore()
	userStore := memory.NewUserStore()

	tests := []struct {
		name        string
		svc         func() (TaskService, error)
		expectError string
	}{
		{
			name: "nil task store",
			svc: func() (TaskService, error) {
				return NewTaskService(nil, userStore, slog.Default())
			},
			expectError: "taskStore",
		},
		{
			name: "nil user store",
			svc: func() (TaskService, error) {
				return NewTaskService(taskStore, nil, slog.Default())
			},
			expectError: "userStore",
		},
		{
			name: "nil logger uses default",
			svc: func() (TaskService, error) {
				return NewTaskService(taskStore, userStore, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := tt.svc()
			if tt.expectError != "" {
				assert.Error(t, err)
				assert.Nil(t, svc)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestCreateTaskValid(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	view, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:    "Unassigned Task",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, domain.StatusToDo, view.Task.Status)
	assert.Empty(t, view.AssigneeName, "unassigned task has no assignee name")
	assert.Nil(t, view.Task.AssignedUserID)
	assert.False(t, view.Task.CreatedAt.IsZero())
	assert.Equal(t, view.Task.CreatedAt, view.Task.UpdatedAt)
}

func TestCreateTaskWithAssignee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	userID := int64(1)
	view, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:          "Test Task",
		DueDate:        time.Now().AddDate(0, 0, 7),
		Priority:       domain.PriorityMedium,
		AssignedUserID: &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Test Task", view.Task.Title)
	assert.Equal(t, domain.StatusToDo, view.Task.Status)
	assert.Equal(t, "John Doe", view.AssigneeName)
}

func TestCreateTaskPastDueDate(t *testing.T) {
	ctx := context.Background()
	svc, taskStore, _ := newTestService(t)

	tests := []struct {
		name    string
		dueDate time.Time
	}{
		{name: "one second in the past", dueDate: time.Now().Add(-1 * time.Second)},
		{name: "one day in the past", dueDate: time.Now().AddDate(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, CreateTaskInput{
				Title:    "Late Task",
				DueDate:  tt.dueDate,
				Priority: domain.PriorityMedium,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), "due date cannot be in the past")

			all, storeErr := taskStore.GetAll(ctx)
			require.NoError(t, storeErr)
			assert.Empty(t, all, "no task persisted on validation failure")
		})
	}
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	ctx := context.Background()
	svc, taskStore, _ := newTestService(t)

	userID := int64(42)
	_, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:          "Orphan Task",
		DueDate:        time.Now().Add(24 * time.Hour),
		Priority:       domain.PriorityHigh,
		AssignedUserID: &userID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "assigned user does not exist")

	all, storeErr := taskStore.GetAll(ctx)
	require.NoError(t, storeErr)
	assert.Empty(t, all)
}

func TestGetTask(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:    "Fetch Me",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	view, err := svc.GetTask(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fetch Me", view.Task.Title)

	_, err = svc.GetTask(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTasksByUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	userID := int64(1)
	_, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:          "Assigned",
		DueDate:        time.Now().Add(24 * time.Hour),
		Priority:       domain.PriorityLow,
		AssignedUserID: &userID,
	})
	require.NoError(t, err)

	views, err := svc.ListTasksByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "John Doe", views[0].AssigneeName)

	// A user with zero assigned tasks yields an empty sequence, not an error.
	empty, err := svc.ListTasksByUser(ctx, 77)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	userID := int64(1)
	created, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:          "Original Title",
		Description:    "Original description",
		DueDate:        time.Now().Add(48 * time.Hour),
		Priority:       domain.PriorityMedium,
		AssignedUserID: &userID,
	})
	require.NoError(t, err)
	original := created.Task

	// Supplying only status must leave every other field untouched except
	// UpdatedAt, which strictly increases.
	time.Sleep(5 * time.Millisecond)
	status := domain.StatusInProgress
	updated, err := svc.UpdateTask(ctx, original.ID, UpdateTaskInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInProgress, updated.Task.Status)
	assert.Equal(t, original.Title, updated.Task.Title)
	assert.Equal(t, original.Description, updated.Task.Description)
	assert.Equal(t, original.DueDate, updated.Task.DueDate)
	assert.Equal(t, original.Priority, updated.Task.Priority)
	assert.Equal(t, original.AssignedUserID, updated.Task.AssignedUserID)
	assert.Equal(t, original.CreatedAt, updated.Task.CreatedAt)
	assert.True(t, updated.Task.UpdatedAt.After(original.UpdatedAt),
		"UpdatedAt must strictly increase on every mutation")
}

func TestUpdateTaskFieldSemantics(t *testing.T) {
	ctx := context.Background()

	blank := "   "
	newTitle := "New Title"
	emptyDesc := ""

	tests := []struct {
		name      string
		input     UpdateTaskInput
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "blank title is not applied",
			input:     UpdateTaskInput{Title: &blank},
			wantTitle: "Original Title",
			wantDesc:  "Original description",
		},
		{
			name:      "non-blank title is applied",
			input:     UpdateTaskInput{Title: &newTitle},
			wantTitle: "New Title",
			wantDesc:  "Original description",
		},
		{
			name:      "explicit empty description clears the field",
			input:     UpdateTaskInput{Description: &emptyDesc},
			wantTitle: "Original Title",
			wantDesc:  "",
		},
		{
			name:      "absent description is left untouched",
			input:     UpdateTaskInput{},
			wantTitle: "Original Title",
			wantDesc:  "Original description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			created, err := svc.CreateTask(ctx, CreateTaskInput{
				Title:       "Original Title",
				Description: "Original description",
				DueDate:     time.Now().Add(24 * time.Hour),
				Priority:    domain.PriorityLow,
			})
			require.NoError(t, err)

			updated, err := svc.UpdateTask(ctx, created.Task.ID, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, updated.Task.Title)
			assert.Equal(t, tt.wantDesc, updated.Task.Description)
		})
	}
}

func TestUpdateTaskValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:    "Target",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	pastDue := time.Now().Add(-1 * time.Second)
	_, err = svc.UpdateTask(ctx, created.Task.ID, UpdateTaskInput{DueDate: &pastDue})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "due date cannot be in the past")

	ghost := int64(404)
	_, err = svc.UpdateTask(ctx, created.Task.ID, UpdateTaskInput{AssignedUserID: &ghost})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "assigned user does not exist")
}

func TestUpdateTaskNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	status := domain.StatusDone
	_, err := svc.UpdateTask(ctx, 12345, UpdateTaskInput{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:    "Doomed",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteTask(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetTask(ctx, created.Task.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleted task is gone")
}

func TestDeleteTaskNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.DeleteTask(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaleAssigneeTolerated(t *testing.T) {
	ctx := context.Background()

	taskStore := memory.NewTaskStore()
	userStore := memory.NewUserStore()
	svc, err := NewTaskService(taskStore, userStore, slog.Default())
	require.NoError(t, err)

	// A task whose assignee is absent from the user store projects with an
	// empty assignee name rather than failing.
	stale := int64(5)
	task, err := domain.NewTask("Stale", "", time.Now().Add(24*time.Hour), domain.PriorityLow, &stale)
	require.NoError(t, err)
	created, err := taskStore.Create(ctx, task)
	require.NoError(t, err)

	view, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, view.AssigneeName)
	require.NotNil(t, view.Task.AssignedUserID)
	assert.Equal(t, stale, *view.Task.AssignedUserID)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "John Doe", users[0].Name)
}
