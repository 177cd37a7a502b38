package appearance

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steadystate/internal/core/model"
)

func TestLookupFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "gradient3", Lookup("gradient3").ID)
	assert.Equal(t, Default(), Lookup("bg-gradient-to-br from-pink-900"))
	assert.False(t, Known(""))
	assert.True(t, Known("gradient6"))
}

func TestNextWraps(t *testing.T) {
	assert.Equal(t, "gradient2", Next("gradient1").ID)
	assert.Equal(t, "gradient1", Next("gradient6").ID)
	assert.Equal(t, Default(), Next("unknown"))
}

func TestParseHex(t *testing.T) {
	parsed, err := ParseHex("#1e40af")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff}, parsed)

	_, err = ParseHex("#123")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestCatalogColoursParse(t *testing.T) {
	for _, background := range All() {
		for _, value := range []string{background.Start, background.Middle, background.End} {
			_, err := ParseHex(value)
			assert.NoError(t, err, background.ID)
		}
	}
	for _, mode := range model.AllModes() {
		start, end := ModeAccent(mode)
		assert.NotPanics(t, func() {
			MustHex(start)
			MustHex(end)
		})
	}
}
