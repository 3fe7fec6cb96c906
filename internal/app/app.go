package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/locsanity/internal/config"
	"github.com/vk/locsanity/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	project *config.Project
}

// NewApp is the constructor for the main application. Findings are echoed to
// outW and diagnostics are logged to logW. The project file, if any, is read
// through loader.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loadProject(ctx, appConfig, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Workbook != "" {
		project.Workbook = appConfig.Workbook
	}
	logger.Debug("Project configuration loaded.", "dir", project.Dir, "fonts", len(project.Fonts))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		project: project,
	}, nil
}

// loadProject reads the explicit project file, falls back to the default
// file name inside the data directory, and finally to built-in defaults.
func loadProject(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)

	if appConfig.ConfigPath != "" {
		return loader.Load(ctx, appConfig.ConfigPath, appConfig.Dir)
	}

	path := filepath.Join(appConfig.Dir, config.DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return loader.Load(ctx, path, appConfig.Dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	logger.Debug("No project file found, using defaults.", "looked_for", path)
	dir, err := filepath.Abs(appConfig.Dir)
	if err != nil {
		return nil, err
	}
	project := config.Default(dir)
	project.Resolve()
	return project, project.Validate()
}

// Project returns the resolved project configuration. This is primarily for testing.
func (a *App) Project() *config.Project {
	return a.project
}
