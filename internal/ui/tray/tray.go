package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"steadystate/internal/core/model"
	"steadystate/internal/core/timekeeper"
	"steadystate/internal/i18n"
	"steadystate/resources"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle     func()
	OnReset      func()
	OnSwitchMode func(model.Mode)
	OnShowWindow func()
	OnQuit       func()
}

// Manager handles system tray state.
type Manager struct {
	app        App
	callbacks  Callbacks
	translator *i18n.Translator
	snapshot   timekeeper.Snapshot
	running    bool
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app App, translator *i18n.Translator, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		callbacks:  callbacks,
		translator: translator,
		// Forces the paused icon on the first update.
		running: true,
	}
	manager.Update(timekeeper.Snapshot{Mode: model.ModeFocus})
	return manager
}

// Update redraws the menu for snapshot. Call on the UI thread.
func (manager *Manager) Update(snapshot timekeeper.Snapshot) {
	iconChanged := manager.running != snapshot.Running
	manager.snapshot = snapshot
	manager.running = snapshot.Running
	manager.refreshMenu()
	if iconChanged && manager.app != nil {
		manager.app.SetSystemTrayIcon(resources.StatusLogo(snapshot.Running))
	}
}

// SetTranslator relabels the menu in another language.
func (manager *Manager) SetTranslator(translator *i18n.Translator) {
	manager.translator = translator
	manager.refreshMenu()
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// StatusText renders the status line, e.g. "Focus 24:59 (paused)".
func (manager *Manager) StatusText() string {
	state := manager.translator.T("paused")
	if manager.snapshot.Running {
		state = manager.translator.T("running")
	}
	return fmt.Sprintf("%s %s (%s)", manager.translator.ModeLabel(manager.snapshot.Mode), manager.snapshot.Clock(), state)
}

func (manager *Manager) refreshMenu() {
	status := fyne.NewMenuItem(manager.StatusText(), nil)
	status.Disabled = true

	toggleLabel := manager.translator.T("start")
	if manager.snapshot.Running {
		toggleLabel = manager.translator.T("pause")
	}
	toggle := fyne.NewMenuItem(toggleLabel, manager.callbacks.OnToggle)
	reset := fyne.NewMenuItem(manager.translator.T("reset"), manager.callbacks.OnReset)

	items := []*fyne.MenuItem{status, toggle, reset, fyne.NewMenuItemSeparator()}
	for _, mode := range model.AllModes() {
		mode := mode
		item := fyne.NewMenuItem(manager.translator.ModeLabel(mode), func() {
			if manager.callbacks.OnSwitchMode != nil {
				manager.callbacks.OnSwitchMode(mode)
			}
		})
		item.Checked = mode == manager.snapshot.Mode
		items = append(items, item)
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(manager.translator.T("showWindow"), manager.callbacks.OnShowWindow),
		fyne.NewMenuItem(manager.translator.T("quit"), manager.callbacks.OnQuit),
	)

	manager.menu = fyne.NewMenu(manager.translator.T("appName"), items...)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
