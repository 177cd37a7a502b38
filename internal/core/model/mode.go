package model

import "strings"

// Mode identifies one of the countdown configurations.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// AllModes returns the modes in tab order.
func AllModes() []Mode {
	return []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}
}

// ParseMode resolves a mode name, accepting a few common aliases.
func ParseMode(value string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "focus", "pomodoro", "work":
		return ModeFocus, true
	case "short_break", "short-break", "short", "shortbreak":
		return ModeShortBreak, true
	case "long_break", "long-break", "long", "longbreak":
		return ModeLongBreak, true
	}
	return "", false
}

// Valid reports whether mode is one of the known modes.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Next returns the mode entered automatically after mode completes.
// Long breaks are only ever entered by hand.
func (mode Mode) Next() Mode {
	if mode == ModeFocus {
		return ModeShortBreak
	}
	return ModeFocus
}

func (mode Mode) String() string {
	return string(mode)
}
