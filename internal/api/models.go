package api

import (
	"github.com/phrazzld/tasks-api/internal/domain"
)

// CreateTaskRequest defines the payload for creating a task.
// Any "completed" value in the body is ignored; new tasks start open.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent or null fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ToUpdate converts the request into a domain update.
func (r UpdateTaskRequest) ToUpdate() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// Validate applies the domain rules for partial updates.
func (r *UpdateTaskRequest) Validate() error {
	return r.ToUpdate().Validate()
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil so an
// empty list encodes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}
