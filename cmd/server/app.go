package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// application holds the dependencies of the running server. It is the
// composition root: stores are explicit instances owned here and injected
// into the service, never hidden singletons.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	taskService service.TaskService
}

// newApplication constructs the application's dependency graph: seeded
// in-memory stores and the task service on top of them.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()

	if err := memory.SeedStores(context.Background(), userStore, taskStore); err != nil {
		return nil, fmt.Errorf("failed to seed stores: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		taskService: taskService,
	}, nil
}
