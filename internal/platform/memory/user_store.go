package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserStore implements the store.UserStore interface using an in-memory,
// insertion-ordered collection as the storage backend.
type UserStore struct {
	mu    sync.Mutex
	users []*domain.User
}

// NewUserStore creates a new in-memory implementation of the UserStore
// interface, starting empty.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// GetAll implements store.UserStore.GetAll
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		u := *user
		snapshot = append(snapshot, &u)
	}
	return snapshot, nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, store.NewStoreError("user", "create", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	stored.ID = s.maxIDLocked() + 1
	s.users = append(s.users, &stored)

	created := stored
	return &created, nil
}

// Exists implements store.UserStore.Exists
func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// maxIDLocked returns the highest assigned user ID, or 0 when the store is
// empty. The caller must hold s.mu.
func (s *UserStore) maxIDLocked() int64 {
	var max int64
	for _, user := range s.users {
		if user.ID > max {
			max = user.ID
		}
	}
	return max
}
