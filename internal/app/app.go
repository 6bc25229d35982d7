package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/hyago/internal/config"
	"github.com/vk/hyago/internal/ctxlog"
	"github.com/vk/hyago/internal/engine"
	"github.com/vk/hyago/internal/hcl_adapter"
	"github.com/vk/hyago/internal/publisher"
	"github.com/vk/hyago/internal/registry"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	engine   *engine.Engine
	loader   config.Loader
}

// NewApp builds an App with its own logger, registry and engine. The given
// modules are registered and published; with none, CoreModules is used.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(registry.WithLogger(logger))
	if len(modules) == 0 {
		modules = CoreModules(cfg.Namespace)
	}
	if err := reg.RegisterModules(modules...); err != nil {
		return nil, fmt.Errorf("failed to register resolver modules: %w", err)
	}

	eng := engine.New(engine.WithLogger(logger), engine.WithStdlib())
	if err := publisher.Publish(ctx, reg, eng); err != nil {
		return nil, fmt.Errorf("failed to publish resolvers: %w", err)
	}
	logger.Debug("Resolvers published to engine.", "functions", len(eng.Functions()))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		engine:   eng,
		loader:   hcl_adapter.NewLoader(eng),
	}, nil
}

// Load evaluates the configured paths into a Document.
func (a *App) Load(ctx context.Context) (*config.Document, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Loading configuration...", "paths", a.config.ConfigPaths)

	doc, err := a.loader.Load(ctx, a.config.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Info("Configuration loaded.", "attributes", doc.Len(), "files", len(doc.Files))
	return doc, nil
}

// Publish installs resolvers registered since the App was built. Resolvers
// already known to the engine are left alone.
func (a *App) Publish(ctx context.Context) error {
	return publisher.Publish(ctxlog.WithLogger(ctx, a.logger), a.registry, a.engine)
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the application's interpolation engine.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
