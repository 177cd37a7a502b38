// Package backdrop paints the three-stop background gradients.
package backdrop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"steadystate/internal/core/appearance"
)

// Backdrop is a vertical start/middle/end gradient.
type Backdrop struct {
	background appearance.Background
	upper      *canvas.LinearGradient
	lower      *canvas.LinearGradient
	object     *fyne.Container
}

// New creates a backdrop painted with background.
func New(background appearance.Background) *Backdrop {
	upper := canvas.NewVerticalGradient(nil, nil)
	lower := canvas.NewVerticalGradient(nil, nil)
	view := &Backdrop{
		upper:  upper,
		lower:  lower,
		object: container.NewGridWithRows(2, upper, lower),
	}
	view.apply(background)
	return view
}

// Object returns the canvas object to place behind content.
func (view *Backdrop) Object() fyne.CanvasObject {
	return view.object
}

// Background returns the background currently painted.
func (view *Backdrop) Background() appearance.Background {
	return view.background
}

// Set repaints the backdrop. Call on the UI thread.
func (view *Backdrop) Set(background appearance.Background) {
	if background == view.background {
		return
	}
	view.apply(background)
	view.upper.Refresh()
	view.lower.Refresh()
}

func (view *Backdrop) apply(background appearance.Background) {
	view.background = background
	start := appearance.MustHex(background.Start)
	middle := appearance.MustHex(background.Middle)
	end := appearance.MustHex(background.End)
	view.upper.StartColor, view.upper.EndColor = start, middle
	view.lower.StartColor, view.lower.EndColor = middle, end
}
