package overlay

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/core/appearance"
	"steadystate/internal/core/model"
	"steadystate/internal/i18n"
	"steadystate/internal/ui/animation"
	"steadystate/resources"
)

// Config defines toast visuals.
type Config struct {
	Opacity uint8
	// Notify also raises a desktop notification when the toast is shown.
	Notify bool
}

// Content is the localized text of one toast.
type Content struct {
	Completed   model.Mode
	Next        model.Mode
	Title       string
	Description string
	NextLabel   string
	SkipLabel   string
}

// ContentFor builds the toast announcing that completed finished and next is
// about to start.
func ContentFor(translator *i18n.Translator, completed, next model.Mode) Content {
	title, description := translator.Completion(completed)
	return Content{
		Completed:   completed,
		Next:        next,
		Title:       title,
		Description: description,
		NextLabel:   "→ " + translator.ModeLabel(next),
		SkipLabel:   translator.T("skip"),
	}
}

// Window is the completion toast shown while the next mode is pending.
type Window struct {
	app         fyne.App
	window      fyne.Window
	config      Config
	badge       *canvas.Image
	title       *canvas.Text
	description *canvas.Text
	next        *canvas.Text
	skipButton  *widget.Button
	background  *canvas.Rectangle
	engine      *animation.Engine
	cancelCtx   context.CancelFunc
	onSkip      func()
	visible     bool
}

const (
	toastWidth  = float32(380)
	toastHeight = float32(120)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the toast window hidden.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("SteadyState")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 15, G: 23, B: 42, A: config.Opacity})

	badge := canvas.NewImageFromResource(resources.MustBadge(resources.BadgeSmall))
	badge.FillMode = canvas.ImageFillContain
	badge.SetMinSize(fyne.NewSize(56, 56))

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	title := canvas.NewText("", white)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 18

	description := canvas.NewText("", white)
	description.TextSize = 14

	next := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	next.TextStyle = fyne.TextStyle{Bold: true}
	next.TextSize = 13

	skipButton := widget.NewButton("", nil)

	text := container.NewVBox(title, description, next)
	content := container.NewPadded(container.NewBorder(nil, nil, container.New(&badgeLayout{}, badge, skipButton), nil, text))
	window.SetContent(container.NewStack(background, content))

	overlay := &Window{
		app:         app,
		window:      window,
		config:      config,
		badge:       badge,
		title:       title,
		description: description,
		next:        next,
		skipButton:  skipButton,
		background:  background,
	}
	overlay.engine = animation.New(animation.DefaultConfig(), overlay.setBadge)
	skipButton.OnTapped = func() {
		if overlay.onSkip != nil {
			overlay.onSkip()
		}
	}
	return overlay
}

// Show displays content and starts the badge pulse. Call on the UI thread.
func (overlay *Window) Show(content Content) {
	overlay.title.Text = content.Title
	overlay.description.Text = content.Description
	overlay.next.Text = content.NextLabel
	overlay.skipButton.SetText(content.SkipLabel)
	overlay.background.FillColor = toastColor(content.Completed, overlay.config.Opacity)
	overlay.title.Refresh()
	overlay.description.Refresh()
	overlay.next.Refresh()
	overlay.background.Refresh()

	overlay.window.Resize(fyne.NewSize(toastWidth, toastHeight))
	overlay.window.CenterOnScreen()
	overlay.window.Show()
	overlay.visible = true

	overlay.stopEngine()
	ctx, cancel := context.WithCancel(context.Background())
	overlay.cancelCtx = cancel
	overlay.engine.StartPulse(ctx, animation.PulseSpec{
		Rest: resources.MustBadge(resources.BadgeSmall),
		Peak: resources.MustBadge(resources.BadgeLarge),
	})

	if overlay.config.Notify {
		overlay.app.SendNotification(fyne.NewNotification(content.Title, content.Description))
	}
}

// Hide closes the toast and stops the pulse.
func (overlay *Window) Hide() {
	overlay.stopEngine()
	overlay.window.Hide()
	overlay.visible = false
}

// Visible reports whether the toast is on screen.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// SetOnSkip sets the skip handler.
func (overlay *Window) SetOnSkip(handler func()) {
	overlay.onSkip = handler
}

func (overlay *Window) setBadge(resource fyne.Resource) {
	fyne.Do(func() {
		overlay.badge.Resource = resource
		overlay.badge.Refresh()
	})
}

func (overlay *Window) stopEngine() {
	if overlay.cancelCtx != nil {
		overlay.cancelCtx()
		overlay.cancelCtx = nil
	}
	overlay.engine.Stop()
}

func toastColor(completed model.Mode, alpha uint8) color.Color {
	start, _ := appearance.ModeAccent(completed)
	accent, err := appearance.ParseHex(start)
	if err != nil {
		return color.NRGBA{R: 15, G: 23, B: 42, A: alpha}
	}
	// Darken the accent so white text stays readable.
	accent.R /= 2
	accent.G /= 2
	accent.B /= 2
	accent.A = alpha
	return accent
}

// badgeLayout stacks a square badge above the skip button.
type badgeLayout struct{}

func (layout *badgeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	skip := objects[1]

	skipSize := skip.MinSize()
	imageAreaHeight := size.Height - skipSize.Height
	if imageAreaHeight < 0 {
		imageAreaHeight = 0
	}
	side := imageAreaHeight
	if side > size.Width {
		side = size.Width
	}
	image.Move(fyne.NewPos((size.Width-side)/2, 0))
	image.Resize(fyne.NewSize(side, side))

	skip.Move(fyne.NewPos(0, imageAreaHeight))
	skip.Resize(fyne.NewSize(size.Width, skipSize.Height))
}

func (layout *badgeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	imageMin := objects[0].MinSize()
	skipMin := objects[1].MinSize()
	width := imageMin.Width
	if skipMin.Width > width {
		width = skipMin.Width
	}
	return fyne.NewSize(width, imageMin.Height+skipMin.Height)
}
