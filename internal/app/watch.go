package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
)

// Watch builds once and then rebuilds whenever the configuration file
// changes, until ctx is cancelled. Events are debounced. A failed rebuild
// is logged and the previous build stays current. Only a failure to set up
// the watcher is returned; a failing first build is not fatal.
func (a *App) Watch(ctx context.Context) error {
	ctx, logger := ctxlog.With(a.withLogger(ctx), "config_path", a.config.ConfigPath)

	path, err := filepath.Abs(a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file instead of writing it in place, so the
	// directory is watched and events are filtered by name.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}
	logger.Info("Watching configuration for changes.")

	if _, err := a.Build(ctx); err != nil {
		logger.Error("Initial build failed.", "error", err)
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	schedule := func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("Configuration watcher stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Configuration file changed.", "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(a.debounce, schedule)

		case <-fire:
			if _, err := a.Build(ctx); err != nil {
				logger.Error("Rebuild failed, keeping the previous build.", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Configuration watcher error.", "error", err)
		}
	}
}
