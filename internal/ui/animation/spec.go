package animation

import "fyne.io/fyne/v2"

// PulseSpec holds the two frames a pulse alternates between.
type PulseSpec struct {
	Rest fyne.Resource
	Peak fyne.Resource
	// Beats limits the number of rest/peak cycles. Zero pulses until stopped.
	Beats int
}

// Frames returns the frames in display order.
func (spec PulseSpec) Frames() []fyne.Resource {
	return []fyne.Resource{spec.Peak, spec.Rest}
}
