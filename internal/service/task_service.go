package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates and stores a new, incomplete task.
	CreateTask(ctx context.Context, title string, description *string) (*domain.Task, error)

	// ListTasks returns every task in creation order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id int) (*domain.Task, error)

	// UpdateTask applies the present fields of update to the task.
	UpdateTask(ctx context.Context, id int, update domain.TaskUpdate) (*domain.Task, error)

	// DeleteTask removes a task and returns its final state.
	DeleteTask(ctx context.Context, id int) (*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	description *string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description)
	if err != nil {
		log.Debug("rejected invalid task", "error", err)
		return nil, err
	}

	created, err := s.taskStore.Create(ctx, task)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to store task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", created.ID)
	s.emit(ctx, events.TypeTaskCreated, created)

	return created, nil
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve task",
				"error", err,
				"task_id", id)
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Payload errors take precedence over a missing task.
	if err := update.Validate(); err != nil {
		log.Debug("rejected invalid task update", "error", err, "task_id", id)
		return nil, err
	}

	updated, err := s.taskStore.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		if !store.IsNotFoundError(err) {
			log.Error("failed to update task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", "task_id", id)
	s.emit(ctx, events.TypeTaskUpdated, updated)

	return updated, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleted, err := s.taskStore.Delete(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	s.emit(ctx, events.TypeTaskDeleted, deleted)

	return deleted, nil
}

// emit publishes a lifecycle event. The mutation has already happened,
// so failures are logged and swallowed.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTaskEvent(eventType, task.ID, task)
	if err != nil {
		log.Error("failed to create task event",
			"error", err,
			"event_type", eventType,
			"task_id", task.ID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"task_id", task.ID)
	}
}
