package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/modelforge/internal/adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	runID  string
}

// NewApp is the constructor for the main application. Logs and command
// output both go to outW. Every App gets its own logger tagged with a fresh
// run id.
func NewApp(outW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runID:  runID,
	}
}

// RunID identifies this App's run in its log records.
func (a *App) RunID() string {
	return a.runID
}

// adapter picks the statement adapter for the configured mode.
func (a *App) adapter() adapter.Adapter {
	if a.config.DryRun {
		return adapter.DryRun{}
	}
	return adapter.Build{}
}
