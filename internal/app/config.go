package app

import (
	"errors"
	"fmt"

	"github.com/vk/modelforge/internal/nodeid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectDir string // directory holding project.hcl

	LogFormat   string
	LogLevel    string
	WorkerCount int

	DryRun bool   // compile with the test adapter
	Schema string // overrides the project's schema when set

	// Order prints the topological order of the persisted graph instead of
	// compiling. Select limits it to the listed node ids.
	Order  bool
	Select []string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectDir == "" {
		return nil, errors.New("ProjectDir is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	if len(cfg.Select) > 0 && !cfg.Order {
		return nil, errors.New("Select can only be used together with Order")
	}
	for _, id := range cfg.Select {
		if _, err := nodeid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid Select entry: %w", err)
		}
	}

	return &cfg, nil
}
