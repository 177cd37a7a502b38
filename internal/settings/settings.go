package settings

import (
	"strconv"
	"strings"
	"time"

	"steadystate/internal/core/appearance"
	"steadystate/internal/core/model"
	"steadystate/internal/i18n"
)

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int

	Language   string
	Background string

	// IdlePauseMinutes pauses a focus session after this much inactivity.
	// Zero disables it.
	IdlePauseMinutes int
}

// Bounds is the accepted range of a minute setting.
type Bounds struct {
	Min     int
	Max     int
	Default int
}

var minuteBounds = map[model.Mode]Bounds{
	model.ModeFocus:      {Min: 1, Max: 60, Default: 25},
	model.ModeShortBreak: {Min: 1, Max: 30, Default: 5},
	model.ModeLongBreak:  {Min: 1, Max: 60, Default: 15},
}

const maxIdlePauseMinutes = 120

// DefaultLanguage is the language of a fresh install.
const DefaultLanguage = "tr"

// AutoLanguage selects the operating system language.
const AutoLanguage = "auto"

// Default returns default settings.
func Default() Settings {
	return Settings{
		FocusMinutes:      minuteBounds[model.ModeFocus].Default,
		ShortBreakMinutes: minuteBounds[model.ModeShortBreak].Default,
		LongBreakMinutes:  minuteBounds[model.ModeLongBreak].Default,
		Language:          DefaultLanguage,
		Background:        appearance.Default().ID,
	}
}

// MinuteBounds returns the accepted range for mode.
func MinuteBounds(mode model.Mode) Bounds {
	return minuteBounds[mode]
}

// ParseMinutes reads a minute value typed by the user. Only the leading
// integer is read, so "12abc" and "12.5" both mean 12. Input without one, or
// zero, yields the mode default; numbers out of range are clamped.
func ParseMinutes(text string, mode model.Mode) int {
	bounds := MinuteBounds(mode)
	parsed, err := strconv.Atoi(leadingInteger(text))
	if err != nil || parsed == 0 {
		return bounds.Default
	}
	return clampMinutes(parsed, bounds)
}

func leadingInteger(text string) string {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return ""
	}
	return text[:end]
}

// Minutes returns the configured minutes of mode.
func (settings Settings) Minutes(mode model.Mode) int {
	switch mode {
	case model.ModeShortBreak:
		return settings.ShortBreakMinutes
	case model.ModeLongBreak:
		return settings.LongBreakMinutes
	default:
		return settings.FocusMinutes
	}
}

// Normalize brings every field into its accepted range.
func (settings Settings) Normalize() Settings {
	settings.FocusMinutes = normalizeMinutes(settings.FocusMinutes, minuteBounds[model.ModeFocus])
	settings.ShortBreakMinutes = normalizeMinutes(settings.ShortBreakMinutes, minuteBounds[model.ModeShortBreak])
	settings.LongBreakMinutes = normalizeMinutes(settings.LongBreakMinutes, minuteBounds[model.ModeLongBreak])

	switch {
	case settings.Language == "":
		settings.Language = DefaultLanguage
	case settings.Language == AutoLanguage:
		settings.Language = i18n.DetectLanguage()
	case !i18n.Supported(settings.Language):
		settings.Language = i18n.Resolve(settings.Language)
	}
	if !appearance.Known(settings.Background) {
		settings.Background = appearance.Default().ID
	}

	if settings.IdlePauseMinutes < 0 {
		settings.IdlePauseMinutes = 0
	}
	if settings.IdlePauseMinutes > maxIdlePauseMinutes {
		settings.IdlePauseMinutes = maxIdlePauseMinutes
	}
	return settings
}

// Durations converts the minute settings into timer durations.
func (settings Settings) Durations() model.Durations {
	normalized := settings.Normalize()
	return model.Durations{
		Focus:      time.Duration(normalized.FocusMinutes) * time.Minute,
		ShortBreak: time.Duration(normalized.ShortBreakMinutes) * time.Minute,
		LongBreak:  time.Duration(normalized.LongBreakMinutes) * time.Minute,
	}
}

// IdlePauseAfter returns the idle threshold as a duration.
func (settings Settings) IdlePauseAfter() time.Duration {
	return time.Duration(settings.Normalize().IdlePauseMinutes) * time.Minute
}

func normalizeMinutes(value int, bounds Bounds) int {
	if value == 0 {
		return bounds.Default
	}
	return clampMinutes(value, bounds)
}

func clampMinutes(value int, bounds Bounds) int {
	if value < bounds.Min {
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}
