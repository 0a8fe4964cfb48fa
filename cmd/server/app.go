package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
}

// runServer loads configuration, sets up logging and serves until ctx is
// canceled or the process receives SIGINT/SIGTERM.
func runServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"version", version)

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// newApplication creates a new application instance with all dependencies initialized.
// The task store lives for the lifetime of the application.
func newApplication(cfg *config.Config, l *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: l,
	}

	app.taskStore = memory.NewTaskStore(l)

	app.eventEmitter = events.NewInMemoryEventEmitter(l)
	app.eventEmitter.RegisterHandler(newAuditEventHandler(l.With("component", "audit")))

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	l.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskStore != nil {
		if tasks, err := app.taskStore.List(context.Background()); err == nil {
			app.logger.Info("Discarding in-memory tasks", "count", len(tasks))
		}
	}

	app.logger.Info("Application shutdown completed")
}
