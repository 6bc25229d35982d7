package app

import (
	"context"
	"fmt"

	"github.com/vk/hyago/internal/config"
	"github.com/vk/hyago/internal/watcher"
)

// Watch reloads the configuration every time one of the configured files
// changes and hands the result to onReload. It blocks until ctx is done.
func (a *App) Watch(ctx context.Context, onReload func(*config.Document, error)) error {
	w, err := watcher.New(watcher.Config{Paths: a.config.ConfigPaths})
	if err != nil {
		return fmt.Errorf("failed to watch configuration: %w", err)
	}
	defer func() {
		if err := w.Stop(); err != nil {
			a.logger.Warn("Failed to stop configuration watcher.", "error", err)
		}
	}()

	changes := w.Start()
	a.logger.Info("Watching configuration for changes.", "paths", a.config.ConfigPaths)
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Configuration watcher stopped.")
			return nil
		case err := <-w.Errors():
			a.logger.Warn("Configuration watcher error.", "error", err)
		case <-changes:
			a.logger.Info("Configuration changed, reloading.")
			onReload(a.Load(ctx))
		}
	}
}
