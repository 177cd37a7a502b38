package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"steadystate/internal/core/appearance"
)

func TestBackdropUsesAllThreeStops(t *testing.T) {
	ocean := appearance.Lookup("gradient2")
	view := New(ocean)

	assert.Equal(t, appearance.MustHex(ocean.Start), view.upper.StartColor)
	assert.Equal(t, appearance.MustHex(ocean.Middle), view.upper.EndColor)
	assert.Equal(t, appearance.MustHex(ocean.Middle), view.lower.StartColor)
	assert.Equal(t, appearance.MustHex(ocean.End), view.lower.EndColor)
}

func TestBackdropSet(t *testing.T) {
	view := New(appearance.Default())
	forest := appearance.Lookup("gradient4")

	view.Set(forest)

	assert.Equal(t, forest, view.Background())
	assert.Equal(t, appearance.MustHex(forest.End), view.lower.EndColor)
}
