package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// GetAll retrieves every task in the store, in insertion order.
	// The returned slice is a snapshot: mutating it does not affect the store.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetByUserID retrieves every task assigned to the given user, in
	// insertion order. Returns an empty slice (not an error) when the user
	// has no tasks.
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Create saves a new task to the store. The store assigns the next
	// unused ID; IDs increase monotonically and are never reused, even
	// after deletes. Returns the stored record.
	// Returns ErrInvalidEntity wrapping the validation error if the task
	// data is invalid.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update replaces the stored record matching task.ID.
	// Returns ErrTaskNotFound if no record matches; a missing record is
	// never silently ignored.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes the task with the given ID from the store.
	// Returns true if a record was removed, false if no record matched.
	Delete(ctx context.Context, id int64) (bool, error)

	// Exists reports whether a task with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}
