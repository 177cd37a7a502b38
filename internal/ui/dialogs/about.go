package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/i18n"
	"steadystate/resources"
)

// AboutContent shows the logo, tagline and version.
func AboutContent(translator *i18n.Translator, version string) fyne.CanvasObject {
	logo := canvas.NewImageFromResource(resources.MustLogo(resources.LogoActive))
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(72, 72))

	return container.NewVBox(
		container.NewCenter(logo),
		widget.NewLabelWithStyle(translator.T("appName"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(translator.T("tagline"), fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewLabelWithStyle(version, fyne.TextAlignCenter, fyne.TextStyle{Monospace: true}),
		widget.NewLabelWithStyle(translator.T("madeBy"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	)
}

// ShowAbout opens the about dialog over parent.
func ShowAbout(parent fyne.Window, translator *i18n.Translator, version string) {
	dialog.NewCustom(translator.T("about"), translator.T("close"), AboutContent(translator, version), parent).Show()
}
