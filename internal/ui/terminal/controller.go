package terminal

import (
	"steadystate/internal/core/model"
	"steadystate/internal/core/timekeeper"
	"steadystate/internal/i18n"
	"steadystate/internal/settings"
)

//go:generate mockgen -source=controller.go -destination=mock_controller_test.go -package=terminal

// Controller drives the timer.
type Controller interface {
	Toggle()
	Reset()
	SwitchMode(mode model.Mode)
	Snapshot() timekeeper.Snapshot
}

// Preferences changes the cosmetic settings. *app.App implements it.
type Preferences interface {
	Settings() settings.Settings
	Translator() *i18n.Translator
	SetLanguage(code string)
	SetBackground(id string)
	OnSettingsChange(listener func(settings.Settings))
}
