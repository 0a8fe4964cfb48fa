package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
)

// auditEventHandler writes one structured log line per task change.
type auditEventHandler struct {
	logger *slog.Logger
}

func newAuditEventHandler(logger *slog.Logger) *auditEventHandler {
	return &auditEventHandler{logger: logger}
}

// HandleEvent logs the event and the task state it carries.
func (h *auditEventHandler) HandleEvent(ctx context.Context, event *events.TaskEvent) error {
	var task domain.Task
	if err := event.UnmarshalPayload(&task); err != nil {
		h.logger.Error("failed to unmarshal payload", "error", err, "event_id", event.ID)
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, "task changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int("task_id", event.TaskID),
		slog.Bool("completed", task.Completed),
		slog.Time("at", event.CreatedAt),
	)
	return nil
}
