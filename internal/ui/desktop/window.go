package desktop

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/app"
	"steadystate/internal/core/appearance"
	"steadystate/internal/core/model"
	"steadystate/internal/core/sessions"
	"steadystate/internal/core/timekeeper"
	"steadystate/internal/i18n"
	"steadystate/internal/ui/backdrop"
)

// Actions are the toolbar handlers that open other windows.
type Actions struct {
	OnSettings     func()
	OnBackground   func()
	OnAchievements func()
	OnAbout        func()
}

// MainWindow is the timer window.
type MainWindow struct {
	window      fyne.Window
	application *app.App
	translator  *i18n.Translator
	snapshot    timekeeper.Snapshot

	backdrop    *backdrop.Backdrop
	title       *canvas.Text
	tagline     *canvas.Text
	modeButtons map[model.Mode]*widget.Button
	modeLabel   *canvas.Text
	clock       *canvas.Text
	progress    *widget.ProgressBar
	toggle      *widget.Button
	reset       *widget.Button
	statsTitle  *widget.Label
	stats       map[model.Mode]*widget.Label
	tip         *widget.Label
}

var (
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mutedColor = color.NRGBA{R: 203, G: 213, B: 225, A: 255}
)

// NewMainWindow builds the timer window for application.
func NewMainWindow(fyneApp fyne.App, application *app.App, actions Actions) *MainWindow {
	current := application.Settings()
	view := &MainWindow{
		window:      fyneApp.NewWindow(app.Name),
		application: application,
		backdrop:    backdrop.New(appearance.Lookup(current.Background)),
		title:       canvas.NewText("", textColor),
		tagline:     canvas.NewText("", mutedColor),
		modeButtons: make(map[model.Mode]*widget.Button),
		modeLabel:   canvas.NewText("", mutedColor),
		clock:       canvas.NewText("", textColor),
		progress:    widget.NewProgressBar(),
		statsTitle:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		stats:       make(map[model.Mode]*widget.Label),
		tip:         widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	keeper := application.Keeper()

	view.title.TextSize = 28
	view.title.TextStyle = fyne.TextStyle{Bold: true}
	view.title.Alignment = fyne.TextAlignCenter
	view.tagline.Alignment = fyne.TextAlignCenter
	view.modeLabel.Alignment = fyne.TextAlignCenter
	view.modeLabel.TextSize = 18
	view.clock.TextSize = 72
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.Alignment = fyne.TextAlignCenter
	view.progress.TextFormatter = func() string { return "" }
	view.tip.Wrapping = fyne.TextWrapWord

	tabs := container.NewGridWithColumns(len(model.AllModes()))
	for _, mode := range model.AllModes() {
		mode := mode
		button := widget.NewButton("", func() {
			keeper.SwitchMode(mode)
		})
		view.modeButtons[mode] = button
		tabs.Add(button)
	}

	view.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), keeper.Toggle)
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), keeper.Reset)

	statsRow := container.NewGridWithColumns(len(model.AllModes()))
	for _, mode := range model.AllModes() {
		label := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
		view.stats[mode] = label
		statsRow.Add(label)
	}

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), actionOrNoop(actions.OnSettings)),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), actionOrNoop(actions.OnBackground)),
		widget.NewToolbarAction(theme.ListIcon(), actionOrNoop(actions.OnAchievements)),
		widget.NewToolbarAction(theme.InfoIcon(), actionOrNoop(actions.OnAbout)),
	)

	content := container.NewVBox(
		toolbar,
		view.title,
		view.tagline,
		layout.NewSpacer(),
		tabs,
		view.modeLabel,
		view.clock,
		view.progress,
		container.NewGridWithColumns(2, view.toggle, view.reset),
		layout.NewSpacer(),
		view.statsTitle,
		statsRow,
		view.tip,
	)
	view.window.SetContent(container.NewStack(view.backdrop.Object(), container.NewPadded(content)))
	view.window.Resize(fyne.NewSize(460, 620))

	view.Relabel(application.Translator())
	view.Render(keeper.Snapshot())
	return view
}

// Window returns the underlying fyne window.
func (view *MainWindow) Window() fyne.Window {
	return view.window
}

// Show brings the window to the front.
func (view *MainWindow) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Relabel switches every static label to translator's language.
func (view *MainWindow) Relabel(translator *i18n.Translator) {
	view.translator = translator
	view.window.SetTitle(translator.T("appName"))
	view.title.Text = translator.T("appName")
	view.tagline.Text = translator.T("tagline")
	view.title.Refresh()
	view.tagline.Refresh()
	for mode, button := range view.modeButtons {
		button.SetText(translator.ModeLabel(mode))
	}
	view.reset.SetText(translator.T("reset"))
	view.statsTitle.SetText(translator.T("todayStats"))
	view.tip.SetText(translator.T("tipLabel") + " " + translator.T("tip"))
	view.Render(view.snapshot)
}

// SetBackground repaints the window backdrop.
func (view *MainWindow) SetBackground(background appearance.Background) {
	view.backdrop.Set(background)
}

// Render draws snapshot. Call on the UI thread.
func (view *MainWindow) Render(snapshot timekeeper.Snapshot) {
	if snapshot.Mode == "" {
		snapshot.Mode = model.ModeFocus
	}
	view.snapshot = snapshot

	view.clock.Text = snapshot.Clock()
	view.clock.Refresh()
	view.modeLabel.Text = view.translator.ModeLabel(snapshot.Mode)
	view.modeLabel.Refresh()
	view.progress.SetValue(snapshot.Progress())

	if snapshot.Running {
		view.toggle.SetText(view.translator.T("pause"))
		view.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggle.SetText(view.translator.T("start"))
		view.toggle.SetIcon(theme.MediaPlayIcon())
	}

	for mode, button := range view.modeButtons {
		importance := widget.MediumImportance
		if mode == snapshot.Mode {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
	view.renderStats(snapshot.Counts)
}

func (view *MainWindow) renderStats(counts sessions.Counts) {
	for mode, label := range view.stats {
		label.SetText(fmt.Sprintf("%s\n%d", view.translator.ModeLabel(mode), counts.Of(mode)))
	}
}

func actionOrNoop(action func()) func() {
	if action == nil {
		return func() {}
	}
	return action
}
