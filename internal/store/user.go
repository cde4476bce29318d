package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetAll retrieves every user in the store, in insertion order.
	// The returned slice is a snapshot: mutating it does not affect the store.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user to the store. The store assigns the next ID
	// as one greater than the current maximum (1 when the store is empty).
	// Returns the stored record.
	// Returns ErrInvalidEntity wrapping the validation error if the user
	// data is invalid.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Exists reports whether a user with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}
