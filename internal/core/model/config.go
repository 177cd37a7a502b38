package model

import "time"

// Durations holds the configured countdown length of every mode.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/15 minute cycle.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// For returns the configured duration of mode.
func (durations Durations) For(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return durations.ShortBreak
	case ModeLongBreak:
		return durations.LongBreak
	default:
		return durations.Focus
	}
}

// Normalize truncates every duration to whole seconds and replaces values
// shorter than a second with the mode default.
func (durations Durations) Normalize() Durations {
	defaults := DefaultDurations()
	return Durations{
		Focus:      normalizeDuration(durations.Focus, defaults.Focus),
		ShortBreak: normalizeDuration(durations.ShortBreak, defaults.ShortBreak),
		LongBreak:  normalizeDuration(durations.LongBreak, defaults.LongBreak),
	}
}

func normalizeDuration(value, fallback time.Duration) time.Duration {
	value = value.Truncate(time.Second)
	if value < time.Second {
		return fallback
	}
	return value
}
