package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using an in-memory,
// insertion-ordered collection as the storage backend.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*domain.Task
	nextID int64
}

// NewTaskStore creates a new in-memory implementation of the TaskStore
// interface, starting empty with ID allocation beginning at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		nextID: 1,
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// GetAll implements store.TaskStore.GetAll
func (s *TaskStore) GetAll(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot = append(snapshot, task.Clone())
	}
	return snapshot, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return task.Clone(), nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// GetByUserID implements store.TaskStore.GetByUserID
func (s *TaskStore) GetByUserID(ctx context.Context, userID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.AssignedUserID != nil && *task.AssignedUserID == userID {
			matched = append(matched, task.Clone())
		}
	}
	return matched, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "create", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := task.Clone()
	stored.ID = s.nextID
	s.nextID++

	s.tasks = append(s.tasks, stored)
	return stored.Clone(), nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			s.tasks[i] = task.Clone()
			return s.tasks[i].Clone(), nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Exists implements store.TaskStore.Exists
func (s *TaskStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return true, nil
		}
	}
	return false, nil
}
