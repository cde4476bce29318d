package api

import (
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Title          string    `json:"title" validate:"required,min=1,max=200"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"due_date" validate:"required"`
	Priority       string    `json:"priority" validate:"required,oneof=low medium high"`
	AssignedUserID *int64    `json:"assigned_user_id"`
}

// UpdateTaskRequest represents the request body for a partial task update.
// All fields are optional; absent fields leave the task untouched.
type UpdateTaskRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Description    *string    `json:"description"`
	DueDate        *time.Time `json:"due_date"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status         *string    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssignedUserID *int64     `json:"assigned_user_id"`
}

// TaskResponse represents the response data for a task, including the
// denormalized assignee name.
type TaskResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	DueDate          time.Time `json:"due_date"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	AssignedUserID   *int64    `json:"assigned_user_id,omitempty"`
	AssignedUserName string    `json:"assigned_user_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DeleteTaskResponse confirms a successful task deletion.
type DeleteTaskResponse struct {
	Message string `json:"message"`
}

// taskViewToResponse converts a service.TaskView to a TaskResponse.
func taskViewToResponse(view *service.TaskView) TaskResponse {
	task := view.Task
	return TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		DueDate:          task.DueDate,
		Priority:         string(task.Priority),
		Status:           string(task.Status),
		AssignedUserID:   task.AssignedUserID,
		AssignedUserName: view.AssigneeName,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

// taskViewsToResponses converts a slice of views to responses.
func taskViewsToResponses(views []*service.TaskView) []TaskResponse {
	responses := make([]TaskResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, taskViewToResponse(view))
	}
	return responses
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
