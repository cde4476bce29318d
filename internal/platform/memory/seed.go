package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// int64Ptr is a small helper for building seed records.
func int64Ptr(v int64) *int64 {
	return &v
}

// SeedStores populates the given stores with the fixture data the server
// starts with: three users and two tasks assigned to the first two of them.
// It is called once by the composition root at startup.
func SeedStores(ctx context.Context, users *UserStore, tasks *TaskStore) error {
	seedUsers := []*domain.User{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Smith", Email: "jane@example.com"},
		{Name: "Bob Johnson", Email: "bob@example.com"},
	}

	for _, user := range seedUsers {
		if _, err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Name, err)
		}
	}

	now := time.Now().UTC()
	seedTasks := []*domain.Task{
		{
			Title:          "Setup Development Environment",
			Description:    "Install required tools and configure development environment",
			DueDate:        now.AddDate(0, 0, 7),
			Priority:       domain.PriorityHigh,
			Status:         domain.StatusToDo,
			AssignedUserID: int64Ptr(1),
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			Title:          "Write Unit Tests",
			Description:    "Create comprehensive unit tests for core functionality",
			DueDate:        now.AddDate(0, 0, 5),
			Priority:       domain.PriorityMedium,
			Status:         domain.StatusInProgress,
			AssignedUserID: int64Ptr(2),
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	for _, task := range seedTasks {
		if _, err := tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", task.Title, err)
		}
	}

	return nil
}
