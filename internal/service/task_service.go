package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskView is the response-shaped projection of a task: the task fields
// plus the denormalized name of the assignee. AssigneeName is empty when
// the task is unassigned or the assignee can no longer be resolved.
type TaskView struct {
	Task         *domain.Task
	AssigneeName string
}

// CreateTaskInput carries the fields a client supplies when creating a task.
// Status is not part of the input: new tasks always start in StatusToDo.
type CreateTaskInput struct {
	Title          string
	Description    string
	DueDate        time.Time
	Priority       domain.Priority
	AssignedUserID *int64
}

// UpdateTaskInput carries the optional fields of a partial update.
// Nil fields are left untouched on the existing task. Title is applied only
// when non-blank; an explicitly empty Description clears the field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DueDate        *time.Time
	Priority       *domain.Priority
	Status         *domain.Status
	AssignedUserID *int64
}

// TaskService provides task lifecycle operations.
type TaskService interface {
	// ListTasks retrieves all tasks projected to views.
	ListTasks(ctx context.Context) ([]*TaskView, error)

	// GetTask retrieves a single task by ID.
	// Returns a NotFoundError if the task does not exist.
	GetTask(ctx context.Context, id int64) (*TaskView, error)

	// ListTasksByUser retrieves all tasks assigned to the given user.
	// An unknown user yields an empty slice, not an error.
	ListTasksByUser(ctx context.Context, userID int64) ([]*TaskView, error)

	// CreateTask validates the input and creates a new task in StatusToDo.
	// Returns a ValidationError if the due date is not strictly in the
	// future or the assignee does not exist.
	CreateTask(ctx context.Context, input CreateTaskInput) (*TaskView, error)

	// UpdateTask applies a partial update to an existing task.
	// Returns a NotFoundError if the task does not exist and a
	// ValidationError if a supplied due date or assignee fails validation.
	UpdateTask(ctx context.Context, id int64, input UpdateTaskInput) (*TaskView, error)

	// DeleteTask removes a task by ID.
	// Returns a NotFoundError if the task does not exist.
	DeleteTask(ctx context.Context, id int64) (bool, error)

	// ListUsers retrieves all known users.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	userStore store.UserStore,
	log *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("taskStore cannot be nil")
	}
	if userStore == nil {
		return nil, errors.New("userStore cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving all tasks")

	tasks, err := s.taskStore.GetAll(ctx)
	if err != nil {
		log.Error("failed to retrieve tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}

	return s.toViews(ctx, tasks)
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving task", slog.Int64("task_id", id))

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, NewNotFoundError("task not found")
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return s.toView(ctx, task)
}

// ListTasksByUser implements TaskService.ListTasksByUser
func (s *taskServiceImpl) ListTasksByUser(ctx context.Context, userID int64) ([]*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving tasks for user", slog.Int64("user_id", userID))

	tasks, err := s.taskStore.GetByUserID(ctx, userID)
	if err != nil {
		log.Error("failed to retrieve tasks for user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve tasks for user: %w", err)
	}

	return s.toViews(ctx, tasks)
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input CreateTaskInput) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("creating task", slog.String("title", input.Title))

	if !input.DueDate.After(time.Now()) {
		return nil, NewValidationError("due date cannot be in the past")
	}

	if err := s.checkAssignee(ctx, input.AssignedUserID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(
		input.Title,
		input.Description,
		input.DueDate,
		input.Priority,
		input.AssignedUserID,
	)
	if err != nil {
		return nil, &ValidationError{Message: err.Error(), Err: ErrValidation}
	}

	created, err := s.taskStore.Create(ctx, task)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", input.Title))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created", slog.Int64("task_id", created.ID))
	return s.toView(ctx, created)
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	input UpdateTaskInput,
) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("updating task", slog.Int64("task_id", id))

	existing, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("task not found")
		}
		log.Error("failed to retrieve task for update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	if input.DueDate != nil && !input.DueDate.After(time.Now()) {
		return nil, NewValidationError("due date cannot be in the past")
	}

	if err := s.checkAssignee(ctx, input.AssignedUserID); err != nil {
		return nil, err
	}

	// Partial merge: only client-supplied fields overwrite. A blank title
	// counts as "not provided"; an empty description is applied as-is.
	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.DueDate != nil {
		existing.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		existing.Priority = *input.Priority
	}
	if input.Status != nil {
		existing.Status = *input.Status
	}
	if input.AssignedUserID != nil {
		existing.AssignedUserID = input.AssignedUserID
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error(), Err: ErrValidation}
	}

	updated, err := s.taskStore.Update(ctx, existing)
	if err != nil {
		if store.IsNotFoundError(err) {
			// The task vanished between the existence check and the write.
			return nil, NewNotFoundError("task not found")
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	log.Info("task updated", slog.Int64("task_id", updated.ID))
	return s.toView(ctx, updated)
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("deleting task", slog.Int64("task_id", id))

	exists, err := s.taskStore.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check task existence",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exists {
		return false, NewNotFoundError("task not found")
	}

	deleted, err := s.taskStore.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	if deleted {
		log.Info("task deleted", slog.Int64("task_id", id))
	}
	return deleted, nil
}

// ListUsers implements TaskService.ListUsers
func (s *taskServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving all users")

	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		log.Error("failed to retrieve users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	return users, nil
}

// checkAssignee validates that the given assignee, when set, exists in the
// user store. Returns a ValidationError when it does not.
func (s *taskServiceImpl) checkAssignee(ctx context.Context, userID *int64) error {
	if userID == nil {
		return nil
	}

	exists, err := s.userStore.Exists(ctx, *userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return NewValidationError("assigned user does not exist")
	}
	return nil
}

// toView projects a task to its view, resolving the assignee name at
// projection time. A dangling assignee reference is tolerated: the name is
// simply left empty.
func (s *taskServiceImpl) toView(ctx context.Context, task *domain.Task) (*TaskView, error) {
	view := &TaskView{Task: task}

	if task.AssignedUserID == nil {
		return view, nil
	}

	user, err := s.userStore.GetByID(ctx, *task.AssignedUserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return view, nil
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	view.AssigneeName = user.Name
	return view, nil
}

// toViews projects a slice of tasks to views.
func (s *taskServiceImpl) toViews(ctx context.Context, tasks []*domain.Task) ([]*TaskView, error) {
	views := make([]*TaskView, 0, len(tasks))
	for _, task := range tasks {
		view, err := s.toView(ctx, task)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
