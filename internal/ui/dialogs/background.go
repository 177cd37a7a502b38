package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/core/appearance"
	"steadystate/internal/i18n"
	"steadystate/internal/ui/backdrop"
)

// BackgroundPicker lists every background as a tappable swatch.
type BackgroundPicker struct {
	content fyne.CanvasObject
	buttons map[string]*widget.Button
	onPick  func(string)
	closer  func()
}

// NewBackgroundPicker builds the picker content with current marked.
func NewBackgroundPicker(translator *i18n.Translator, current string, onPick func(string)) *BackgroundPicker {
	picker := &BackgroundPicker{
		buttons: make(map[string]*widget.Button),
		onPick:  onPick,
	}
	current = appearance.Lookup(current).ID

	swatches := container.NewGridWithColumns(3)
	for _, background := range appearance.All() {
		id := background.ID
		button := widget.NewButton(translator.T(background.NameKey), func() {
			picker.pick(id)
		})
		button.Importance = widget.LowImportance
		if id == current {
			button.SetIcon(theme.ConfirmIcon())
		}
		picker.buttons[id] = button

		swatch := container.NewStack(backdrop.New(background).Object(), button)
		swatches.Add(container.NewGridWrap(fyne.NewSize(110, 70), swatch))
	}
	picker.content = swatches
	return picker
}

// Content returns the swatch grid.
func (picker *BackgroundPicker) Content() fyne.CanvasObject {
	return picker.content
}

func (picker *BackgroundPicker) pick(id string) {
	if picker.onPick != nil {
		picker.onPick(id)
	}
	if picker.closer != nil {
		picker.closer()
	}
}

// ShowBackgroundPicker opens the picker over parent. It closes after a pick.
func ShowBackgroundPicker(parent fyne.Window, translator *i18n.Translator, current string, onPick func(string)) {
	picker := NewBackgroundPicker(translator, current, onPick)
	custom := dialog.NewCustom(translator.T("backgroundSettings"), translator.T("close"), picker.Content(), parent)
	picker.closer = custom.Hide
	custom.Show()
}
