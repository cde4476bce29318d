package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// It retrieves all tasks with their assignee names.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	views, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve tasks", err)
		return
	}

	log.Debug("retrieved tasks", slog.Int("count", len(views)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskViewsToResponses(views))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	view, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	log.Debug("retrieved task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskViewToResponse(view))
}

// ListTasksByUser handles GET /tasks/user/{userId} requests.
// An unknown user yields an empty list, not an error.
func (h *TaskHandler) ListTasksByUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := parseIDParam(w, r, "userId")
	if !ok {
		return
	}

	views, err := h.taskService.ListTasksByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve tasks", err)
		return
	}

	log.Debug("retrieved tasks for user",
		slog.Int64("user_id", userID),
		slog.Int("count", len(views)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskViewsToResponses(views))
}

// CreateTask handles POST /tasks requests.
// On success it responds 201 with a Location header for the created resource.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	view, err := h.taskService.CreateTask(r.Context(), service.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Priority:       domain.Priority(req.Priority),
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("created task", slog.Int64("task_id", view.Task.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", view.Task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskViewToResponse(view))
}

// UpdateTask handles PUT /tasks/{id} requests.
// Both validation failures and a missing task map to 400.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	input := service.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		AssignedUserID: req.AssignedUserID,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		input.Status = &status
	}

	view, err := h.taskService.UpdateTask(r.Context(), id, input)
	if err != nil {
		// A missing task maps to 400 here, not 404, matching the PUT
		// contract of the public API.
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrValidation) {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to update task", err)
		return
	}

	log.Debug("updated task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskViewToResponse(view))
}

// DeleteTask handles DELETE /tasks/{id} requests.
// A missing task maps to 400, matching the DELETE contract of the public API.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to delete task", err)
		return
	}

	log.Debug("deleted task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: fmt.Sprintf("Task with id (%d) has been deleted.", id),
	})
}

// parseIDParam extracts and parses an integer URL parameter. On failure it
// writes a 400 response and returns ok=false.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s format", name))
		return 0, false
	}
	return id, true
}
