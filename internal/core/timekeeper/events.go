package timekeeper

import (
	"fmt"
	"time"

	"steadystate/internal/core/model"
	"steadystate/internal/core/sessions"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventCompleted   EventType = "completed"
	EventDurations   EventType = "durations"
	EventIdlePause   EventType = "idle_pause"
	EventIdleError   EventType = "idle_error"
)

// Snapshot is a consistent view of the timer.
type Snapshot struct {
	Mode      model.Mode
	Remaining time.Duration
	Duration  time.Duration
	Running   bool
	Counts    sessions.Counts

	// Set by TimeKeeper only.
	SessionID         string
	PendingTransition bool
}

// RemainingSeconds returns the remaining time in whole seconds.
func (snapshot Snapshot) RemainingSeconds() int {
	return int(snapshot.Remaining / time.Second)
}

// Clock renders the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.Remaining)
}

// FormatClock renders value as zero-padded minutes and seconds.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Progress returns the elapsed fraction of the current countdown in [0,1].
func (snapshot Snapshot) Progress() float64 {
	if snapshot.Duration <= 0 {
		return 0
	}
	progress := float64(snapshot.Duration-snapshot.Remaining) / float64(snapshot.Duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type EventType
	Snapshot

	// Next is the mode the keeper will switch to after a completion.
	Next    model.Mode
	Message string
	At      time.Time
}
