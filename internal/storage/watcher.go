package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"steadystate/internal/log"
	"steadystate/internal/settings"
)

const debounceDuration = 500 * time.Millisecond

// Watch reloads the settings file whenever it changes and hands the result to
// onChange. It blocks until ctx is cancelled. The parent directory is watched
// so that editors replacing the file atomically are picked up.
func Watch(ctx context.Context, path string, onChange func(settings.Settings)) error {
	logger := log.WithComponent("storage.watcher")
	return watch(ctx, path, debounceDuration, logger, onChange)
}

func watch(ctx context.Context, path string, debounce time.Duration, logger zerolog.Logger, onChange func(settings.Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	logger.Info().
		Str(log.FieldEvent, "config.watcher_started").
		Str(log.FieldPath, path).
		Msg("watching settings file for changes")

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	reload := func() {
		loaded, err := LoadSettings(path)
		if err != nil {
			logger.Error().
				Err(err).
				Str(log.FieldEvent, "config.reload_failed").
				Msg("settings reload failed")
			return
		}
		logger.Info().
			Str(log.FieldEvent, "config.reloaded").
			Str(log.FieldPath, path).
			Msg("settings reloaded")
		onChange(loaded)
	}
	defer func() {
		mu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
	}()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			logger.Info().Str(log.FieldEvent, "config.watcher_stopped").Msg("settings watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().
				Str(log.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("settings file changed")

			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				if ctx.Err() != nil {
					return
				}
				reload()
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().
				Err(err).
				Str(log.FieldEvent, "config.watcher_error").
				Msg("settings watcher error")
		}
	}
}
