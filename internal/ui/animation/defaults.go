package animation

import "time"

// DefaultConfig returns the pulse timing used by the overlay badge.
func DefaultConfig() Config {
	return Config{
		PeakDuration: Range{
			Min: 350 * time.Millisecond,
			Max: 450 * time.Millisecond,
		},
		RestDuration: Range{
			Min: 500 * time.Millisecond,
			Max: 700 * time.Millisecond,
		},
	}
}
