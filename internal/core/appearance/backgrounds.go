package appearance

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"steadystate/internal/core/model"
)

// Background is a selectable window backdrop.
type Background struct {
	ID      string
	NameKey string
	// Colors of the gradient as #rrggbb, top-left to bottom-right.
	Start  string
	Middle string
	End    string
}

var backgrounds = []Background{
	{ID: "gradient1", NameKey: "bgNightSky", Start: "#0f172a", Middle: "#1e293b", End: "#0f172a"},
	{ID: "gradient2", NameKey: "bgOcean", Start: "#1e3a8a", Middle: "#1e40af", End: "#312e81"},
	{ID: "gradient3", NameKey: "bgSunset", Start: "#7c2d12", Middle: "#991b1b", End: "#581c87"},
	{ID: "gradient4", NameKey: "bgForest", Start: "#14532d", Middle: "#065f46", End: "#134e4a"},
	{ID: "gradient5", NameKey: "bgLavender", Start: "#581c87", Middle: "#5b21b6", End: "#312e81"},
	{ID: "gradient6", NameKey: "bgChocolate", Start: "#78350f", Middle: "#9a3412", End: "#7f1d1d"},
}

// All returns every background in picker order.
func All() []Background {
	return append([]Background(nil), backgrounds...)
}

// Default returns the night sky background.
func Default() Background {
	return backgrounds[0]
}

// Known reports whether id names a background.
func Known(id string) bool {
	for _, background := range backgrounds {
		if background.ID == id {
			return true
		}
	}
	return false
}

// Lookup returns the background with id, or the default for unknown ids.
func Lookup(id string) Background {
	for _, background := range backgrounds {
		if background.ID == id {
			return background
		}
	}
	return Default()
}

// Next returns the background after id, wrapping around.
func Next(id string) Background {
	for index, background := range backgrounds {
		if background.ID == id {
			return backgrounds[(index+1)%len(backgrounds)]
		}
	}
	return Default()
}

// ModeAccent returns the start and end accent colours of mode.
func ModeAccent(mode model.Mode) (string, string) {
	switch mode {
	case model.ModeShortBreak:
		return "#22c55e", "#10b981"
	case model.ModeLongBreak:
		return "#3b82f6", "#6366f1"
	default:
		return "#ef4444", "#f97316"
	}
}

// ParseHex converts #rrggbb into an opaque colour.
func ParseHex(value string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: want #rrggbb", value)
	}
	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", value, err)
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 0xff,
	}, nil
}

// MustHex is ParseHex for the colour constants above.
func MustHex(value string) color.NRGBA {
	parsed, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return parsed
}
