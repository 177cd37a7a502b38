package timekeeper

import (
	"time"

	"steadystate/internal/core/model"
	"steadystate/internal/core/sessions"
)

// Machine is the single-writer countdown state machine. It owns no goroutines
// and no clock; callers drive it with Tick.
type Machine struct {
	durations model.Durations
	mode      model.Mode
	remaining time.Duration
	running   bool
	counter   sessions.Counter
}

// NewMachine returns a machine idling in focus mode.
func NewMachine(durations model.Durations) *Machine {
	machine := &Machine{
		durations: durations.Normalize(),
		mode:      model.ModeFocus,
	}
	machine.remaining = machine.durations.For(machine.mode)
	return machine
}

// Start sets the machine running. It is a no-op with nothing left to count.
func (machine *Machine) Start() bool {
	if machine.remaining <= 0 {
		return false
	}
	machine.running = true
	return true
}

// Pause stops the countdown.
func (machine *Machine) Pause() {
	machine.running = false
}

// Reset restores the full duration of the current mode.
func (machine *Machine) Reset() {
	machine.remaining = machine.durations.For(machine.mode)
	machine.running = false
}

// Tick consumes one second. It reports whether the session completed.
func (machine *Machine) Tick() bool {
	if !machine.running || machine.remaining <= 0 {
		return false
	}
	machine.remaining -= time.Second
	if machine.remaining > 0 {
		return false
	}
	machine.remaining = 0
	machine.running = false
	machine.Complete()
	return true
}

// Complete records a finished session for the current mode and returns the
// mode that follows it.
func (machine *Machine) Complete() model.Mode {
	machine.counter.Record(machine.mode)
	return machine.mode.Next()
}

// SwitchMode enters mode with its full duration, stopped.
func (machine *Machine) SwitchMode(mode model.Mode) {
	if !mode.Valid() {
		return
	}
	machine.mode = mode
	machine.remaining = machine.durations.For(mode)
	machine.running = false
}

// SetDurations replaces the configured durations. An idle machine picks up the
// new duration of its mode immediately; a running one keeps counting but never
// exceeds the new duration. A completed session stays at zero until the mode
// changes or the timer is reset.
func (machine *Machine) SetDurations(durations model.Durations) {
	machine.durations = durations.Normalize()
	configured := machine.durations.For(machine.mode)
	if !machine.running {
		if machine.remaining > 0 {
			machine.remaining = configured
		}
		return
	}
	if machine.remaining > configured {
		machine.remaining = configured
	}
}

// Durations returns the configured durations.
func (machine *Machine) Durations() model.Durations {
	return machine.durations
}

// Mode returns the current mode.
func (machine *Machine) Mode() model.Mode {
	return machine.mode
}

// Running reports whether the countdown is active.
func (machine *Machine) Running() bool {
	return machine.running
}

// Snapshot returns the machine state.
func (machine *Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:      machine.mode,
		Remaining: machine.remaining,
		Duration:  machine.durations.For(machine.mode),
		Running:   machine.running,
		Counts:    machine.counter.Snapshot(),
	}
}
