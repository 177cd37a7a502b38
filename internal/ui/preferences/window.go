package preferences

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/core/model"
	"steadystate/internal/i18n"
	"steadystate/internal/settings"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	settings   settings.Settings
	translator *i18n.Translator
	onSave     func(settings.Settings)
	onCancel   func()

	languageLabel *widget.Label
	language      *widget.Select
	labels        map[model.Mode]*widget.Label
	entries       map[model.Mode]*widget.Entry
	saveButton    *widget.Button
	cancelButton  *widget.Button
}

// New creates a settings window.
func New(app fyne.App, translator *i18n.Translator, current settings.Settings, onSave func(settings.Settings)) *Window {
	window := app.NewWindow(translator.T("settings"))

	names := make([]string, 0, len(i18n.Languages()))
	for _, lang := range i18n.Languages() {
		names = append(names, lang.Name)
	}

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		languageLabel: widget.NewLabel(""),
		language:      widget.NewSelect(names, nil),
		labels:        make(map[model.Mode]*widget.Label),
		entries:       make(map[model.Mode]*widget.Entry),
		saveButton:    widget.NewButton("", nil),
		cancelButton:  widget.NewButton("", nil),
	}

	form := container.NewVBox(prefs.languageLabel, prefs.language)
	for _, mode := range model.AllModes() {
		label := widget.NewLabel("")
		entry := widget.NewEntry()
		bounds := settings.MinuteBounds(mode)
		entry.SetPlaceHolder(strconv.Itoa(bounds.Min) + "-" + strconv.Itoa(bounds.Max))
		prefs.labels[mode] = label
		prefs.entries[mode] = entry
		form.Add(label)
		form.Add(entry)
	}

	buttons := container.NewHBox(layout.NewSpacer(), prefs.cancelButton, prefs.saveButton)
	window.SetContent(container.NewPadded(container.NewBorder(nil, buttons, nil, nil, form)))
	window.Resize(fyne.NewSize(360, 380))

	prefs.saveButton.Importance = widget.HighImportance
	prefs.saveButton.OnTapped = prefs.handleSave
	prefs.cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	prefs.UpdateSettings(translator, current)
	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel sets the handler run when the user discards changes.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// UpdateSettings replaces window values and relabels it.
func (prefs *Window) UpdateSettings(translator *i18n.Translator, current settings.Settings) {
	prefs.translator = translator
	prefs.settings = current

	prefs.window.SetTitle(translator.T("settings"))
	prefs.languageLabel.SetText(translator.T("language"))
	prefs.labels[model.ModeFocus].SetText(translator.T("focusTime"))
	prefs.labels[model.ModeShortBreak].SetText(translator.T("shortBreakTime"))
	prefs.labels[model.ModeLongBreak].SetText(translator.T("longBreakTime"))
	prefs.saveButton.SetText(translator.T("save"))
	prefs.cancelButton.SetText(translator.T("cancel"))

	prefs.language.SetSelected(languageName(current.Language))
	for mode, entry := range prefs.entries {
		entry.SetText(strconv.Itoa(current.Minutes(mode)))
	}
}

func (prefs *Window) handleSave() {
	updated := prefs.settings
	updated.FocusMinutes = settings.ParseMinutes(prefs.entries[model.ModeFocus].Text, model.ModeFocus)
	updated.ShortBreakMinutes = settings.ParseMinutes(prefs.entries[model.ModeShortBreak].Text, model.ModeShortBreak)
	updated.LongBreakMinutes = settings.ParseMinutes(prefs.entries[model.ModeLongBreak].Text, model.ModeLongBreak)
	if code := languageCode(prefs.language.Selected); code != "" {
		updated.Language = code
	}

	prefs.settings = updated
	prefs.window.Hide()
	if prefs.onSave != nil {
		prefs.onSave(updated)
	}
}

func languageName(code string) string {
	for _, lang := range i18n.Languages() {
		if lang.Code == code {
			return lang.Name
		}
	}
	return ""
}

func languageCode(name string) string {
	for _, lang := range i18n.Languages() {
		if strings.EqualFold(lang.Name, name) {
			return lang.Code
		}
	}
	return ""
}
