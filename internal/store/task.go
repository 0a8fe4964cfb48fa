package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations must be safe for concurrent use and must hand out
// copies, never references to their internal records.
type TaskStore interface {
	// Create assigns the next ID to task, stores it and returns the stored copy.
	// The next ID is one more than the largest live ID, or 1 when empty.
	// Returns ErrInvalidEntity wrapping the domain error if the task is invalid.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// List returns every task in insertion order.
	// Returns an empty, non-nil slice when the store is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int) (*domain.Task, error)

	// Update applies a partial update to the task with the given ID.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns ErrInvalidEntity wrapping the domain error if the update is invalid.
	Update(ctx context.Context, id int, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes the task with the given ID and returns it.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int) (*domain.Task, error)
}
