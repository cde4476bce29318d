package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityValidate(t *testing.T) {
	tests := []struct {
		name        string
		priority    Priority
		expectError bool
	}{
		{name: "low", priority: PriorityLow, expectError: false},
		{name: "medium", priority: PriorityMedium, expectError: false},
		{name: "high", priority: PriorityHigh, expectError: false},
		{name: "empty", priority: Priority(""), expectError: true},
		{name: "unknown", priority: Priority("urgent"), expectError: true},
		{name: "wrong case", priority: Priority("High"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.priority.Validate()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidPriority)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusValidate(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		expectError bool
	}{
		{name: "todo", status: StatusToDo, expectError: false},
		{name: "in_progress", status: StatusInProgress, expectError: false},
		{name: "done", status: StatusDone, expectError: false},
		{name: "empty", status: Status(""), expectError: true},
		{name: "unknown", status: Status("blocked"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidStatus)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	dueDate := time.Now().UTC().AddDate(0, 0, 7)
	userID := int64(1)

	tests := []struct {
		name        string
		title       string
		description string
		dueDate     time.Time
		priority    Priority
		assignee    *int64
		wantErr     error
	}{
		{
			name:        "valid task with assignee",
			title:       "Test Task",
			description: "Test Description",
			dueDate:     dueDate,
			priority:    PriorityMedium,
			assignee:    &userID,
		},
		{
			name:     "valid task without assignee",
			title:    "Unassigned",
			dueDate:  dueDate,
			priority: PriorityLow,
		},
		{
			name:     "empty title",
			title:    "",
			dueDate:  dueDate,
			priority: PriorityLow,
			wantErr:  ErrTaskTitleEmpty,
		},
		{
			name:     "title too long",
			title:    strings.Repeat("a", TitleMaxLen+1),
			dueDate:  dueDate,
			priority: PriorityLow,
			wantErr:  ErrTaskTitleTooLong,
		},
		{
			name:     "title at max length",
			title:    strings.Repeat("a", TitleMaxLen),
			dueDate:  dueDate,
			priority: PriorityLow,
		},
		{
			name:     "zero due date",
			title:    "Test Task",
			dueDate:  time.Time{},
			priority: PriorityLow,
			wantErr:  ErrTaskDueDateZero,
		},
		{
			name:     "invalid priority",
			title:    "Test Task",
			dueDate:  dueDate,
			priority: Priority("critical"),
			wantErr:  ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, tt.description, tt.dueDate, tt.priority, tt.assignee)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.description, task.Description)
			assert.Equal(t, StatusToDo, task.Status, "new tasks must start in todo")
			assert.Equal(t, int64(0), task.ID, "ID is assigned by the store, not the constructor")
			assert.False(t, task.CreatedAt.IsZero())
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
			assert.Equal(t, time.UTC, task.CreatedAt.Location())
		})
	}
}

func TestTaskClone(t *testing.T) {
	userID := int64(3)
	task, err := NewTask("Original", "desc", time.Now().AddDate(0, 0, 1), PriorityHigh, &userID)
	require.NoError(t, err)
	task.ID = 42

	clone := task.Clone()

	assert.Equal(t, task, clone)
	require.NotSame(t, task, clone)
	require.NotSame(t, task.AssignedUserID, clone.AssignedUserID)

	// Mutating the clone's assignee must not leak into the original.
	*clone.AssignedUserID = 99
	assert.Equal(t, int64(3), *task.AssignedUserID)
}
