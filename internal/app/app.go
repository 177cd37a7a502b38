// Package app holds the application state shared by the front ends: the
// running timer, the user's settings and the active translation table.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"steadystate/internal/core/timekeeper"
	"steadystate/internal/i18n"
	"steadystate/internal/log"
	"steadystate/internal/settings"
)

// Name is the application name used for config paths and the instance lock.
const Name = "SteadyState"

// App is the explicit application state passed to views.
type App struct {
	mu         sync.RWMutex
	keeper     *timekeeper.TimeKeeper
	settings   settings.Settings
	translator *i18n.Translator
	listeners  []func(settings.Settings)
	logger     zerolog.Logger
}

// Options tune the timer created by New.
type Options struct {
	Keeper timekeeper.Config
}

// New builds the application state from initial settings.
func New(initial settings.Settings, options Options) *App {
	initial = initial.Normalize()
	keeper := timekeeper.New(initial.Durations(), options.Keeper)
	keeper.SetIdlePauseAfter(initial.IdlePauseAfter())

	return &App{
		keeper:     keeper,
		settings:   initial,
		translator: i18n.New(initial.Language),
		logger:     log.WithComponent("app"),
	}
}

// Keeper returns the timer.
func (application *App) Keeper() *timekeeper.TimeKeeper {
	return application.keeper
}

// Settings returns the current settings.
func (application *App) Settings() settings.Settings {
	application.mu.RLock()
	defer application.mu.RUnlock()
	return application.settings
}

// Translator returns the translator for the current language.
func (application *App) Translator() *i18n.Translator {
	application.mu.RLock()
	defer application.mu.RUnlock()
	return application.translator
}

// OnSettingsChange registers a listener called after every settings change.
func (application *App) OnSettingsChange(listener func(settings.Settings)) {
	application.mu.Lock()
	defer application.mu.Unlock()
	application.listeners = append(application.listeners, listener)
}

// ApplySettings normalizes updated and makes it current. Durations reach the
// timer immediately; an idle timer resyncs its remaining time.
func (application *App) ApplySettings(updated settings.Settings) {
	application.update(func(settings.Settings) settings.Settings {
		return updated
	})
}

// SetLanguage switches the UI language.
func (application *App) SetLanguage(code string) {
	application.update(func(current settings.Settings) settings.Settings {
		current.Language = code
		return current
	})
}

// SetBackground switches the window background.
func (application *App) SetBackground(id string) {
	application.update(func(current settings.Settings) settings.Settings {
		current.Background = id
		return current
	})
}

// update applies change to the current settings. The timer is updated under
// the same lock so concurrent updates reach it in the order they were stored.
func (application *App) update(change func(settings.Settings) settings.Settings) {
	application.mu.Lock()
	previous := application.settings
	updated := change(previous).Normalize()
	application.settings = updated
	if previous.Language != updated.Language || application.translator == nil {
		application.translator = i18n.New(updated.Language)
	}
	if previous.Durations() != updated.Durations() {
		application.keeper.SetDurations(updated.Durations())
	}
	application.keeper.SetIdlePauseAfter(updated.IdlePauseAfter())
	listeners := append(([]func(settings.Settings))(nil), application.listeners...)
	application.mu.Unlock()

	application.logger.Info().
		Str(log.FieldEvent, "settings.applied").
		Str(log.FieldLanguage, updated.Language).
		Str("background", updated.Background).
		Int("focus_minutes", updated.FocusMinutes).
		Int("short_break_minutes", updated.ShortBreakMinutes).
		Int("long_break_minutes", updated.LongBreakMinutes).
		Msg("settings applied")

	for _, listener := range listeners {
		listener(updated)
	}
}

// Close releases the timer.
func (application *App) Close() {
	application.keeper.Close()
}
