package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements store.TaskStore over an ordered slice guarded by a
// single RWMutex. index maps a task ID to its position in tasks.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	index  map[int]int
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory TaskStore.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make([]*domain.Task, 0),
		index:  make(map[int]int),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := task.Clone()
	stored.ID = s.nextIDLocked()

	if err := stored.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "create", "validation failed", joinInvalid(err))
	}

	s.index[stored.ID] = len(s.tasks)
	s.tasks = append(s.tasks, stored)

	log.Debug("task created", slog.Int("task_id", stored.ID))
	return stored.Clone(), nil
}

// List implements store.TaskStore.List.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		log.Debug("task not found", slog.Int("task_id", id))
		return nil, store.ErrTaskNotFound
	}
	return s.tasks[pos].Clone(), nil
}

// Update implements store.TaskStore.Update. The stored record is only
// replaced once the update has been validated.
func (s *TaskStore) Update(ctx context.Context, id int, update domain.TaskUpdate) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		log.Debug("task not found for update", slog.Int("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	updated := s.tasks[pos].Clone()
	if err := updated.Apply(update); err != nil {
		log.Warn("task validation failed during update",
			slog.Int("task_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "update", "validation failed", joinInvalid(err))
	}

	s.tasks[pos] = updated

	log.Debug("task updated", slog.Int("task_id", id))
	return updated.Clone(), nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id int) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		log.Debug("task not found for delete", slog.Int("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	removed := s.tasks[pos]
	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.tasks); i++ {
		s.index[s.tasks[i].ID] = i
	}

	log.Debug("task deleted", slog.Int("task_id", id))
	return removed, nil
}

// nextIDLocked returns max live ID + 1. IDs are appended in increasing
// order, so the last element always holds the max.
func (s *TaskStore) nextIDLocked() int {
	if len(s.tasks) == 0 {
		return 1
	}
	return s.tasks[len(s.tasks)-1].ID + 1
}

// joinInvalid tags a domain validation error with store.ErrInvalidEntity
// while keeping the domain error matchable.
func joinInvalid(err error) error {
	return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
}
