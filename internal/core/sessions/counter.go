package sessions

import "steadystate/internal/core/model"

// Counts is a snapshot of completed sessions per mode.
type Counts struct {
	Focus      int
	ShortBreak int
	LongBreak  int
}

// Of returns the count recorded for mode.
func (counts Counts) Of(mode model.Mode) int {
	switch mode {
	case model.ModeFocus:
		return counts.Focus
	case model.ModeShortBreak:
		return counts.ShortBreak
	case model.ModeLongBreak:
		return counts.LongBreak
	}
	return 0
}

// Total returns the number of completed sessions across all modes.
func (counts Counts) Total() int {
	return counts.Focus + counts.ShortBreak + counts.LongBreak
}

// Counter accumulates completions for the lifetime of the process.
// It is not safe for concurrent use; the owning state machine serializes access.
type Counter struct {
	counts Counts
}

// Record adds exactly one completion for mode.
func (counter *Counter) Record(mode model.Mode) {
	switch mode {
	case model.ModeFocus:
		counter.counts.Focus++
	case model.ModeShortBreak:
		counter.counts.ShortBreak++
	case model.ModeLongBreak:
		counter.counts.LongBreak++
	}
}

// Snapshot returns the current counts.
func (counter *Counter) Snapshot() Counts {
	return counter.counts
}
