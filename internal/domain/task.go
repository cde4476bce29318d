package domain

import (
	"errors"
	"time"
)

// Task-specific validation errors
var (
	// ErrTaskTitleEmpty is returned when a task's title is empty or blank.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task's title exceeds the maximum length.
	ErrTaskTitleTooLong = errors.New("task title cannot exceed 200 characters")

	// ErrTaskDueDateZero is returned when a task's due date is not set.
	ErrTaskDueDateZero = errors.New("task due date must be set")
)

// TitleMaxLen is the maximum allowed length of a task title.
const TitleMaxLen = 200

// Priority represents the urgency level of a task.
// It is a closed set: use the exported constants, not ad-hoc strings.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Validate checks that the priority is one of the known values.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return ErrInvalidPriority
	}
}

// Status represents where a task sits in its lifecycle.
// The three stages are ordered: a task starts at StatusToDo.
type Status string

const (
	StatusToDo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Task represents a trackable unit of work with a due date, priority,
// lifecycle status and an optional assignee.
type Task struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	DueDate        time.Time `json:"due_date"`
	Priority       Priority  `json:"priority"`
	Status         Status    `json:"status"`
	AssignedUserID *int64    `json:"assigned_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewTask creates a new Task with the given title, description, due date,
// priority and optional assignee. The task starts in StatusToDo and has its
// creation/update timestamps set to the current UTC time. The ID is zero
// until the store assigns one on creation.
// Returns an error if validation fails.
func NewTask(
	title, description string,
	dueDate time.Time,
	priority Priority,
	assignedUserID *int64,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:          title,
		Description:    description,
		DueDate:        dueDate,
		Priority:       priority,
		Status:         StatusToDo,
		AssignedUserID: assignedUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if len(t.Title) > TitleMaxLen {
		return ErrTaskTitleTooLong
	}

	if t.DueDate.IsZero() {
		return ErrTaskDueDateZero
	}

	if err := t.Priority.Validate(); err != nil {
		return err
	}

	if err := t.Status.Validate(); err != nil {
		return err
	}

	return nil
}

// Clone returns a copy of the task. The AssignedUserID pointer is
// deep-copied so callers cannot mutate stored records through it.
func (t *Task) Clone() *Task {
	clone := *t
	if t.AssignedUserID != nil {
		id := *t.AssignedUserID
		clone.AssignedUserID = &id
	}
	return &clone
}
