// Package desktop runs the fyne front end: main window, tray, completion toast
// and the dialogs around them.
package desktop

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"steadystate/internal/app"
	"steadystate/internal/core/achievements"
	"steadystate/internal/core/appearance"
	"steadystate/internal/core/sessions"
	"steadystate/internal/core/timekeeper"
	"steadystate/internal/log"
	"steadystate/internal/platform"
	"steadystate/internal/settings"
	"steadystate/internal/ui/dialogs"
	"steadystate/internal/ui/overlay"
	"steadystate/internal/ui/preferences"
	"steadystate/internal/ui/tray"
	"steadystate/resources"
)

const appID = "io.steadystate.app"

// Options configures the desktop front end.
type Options struct {
	Version string
	// Background starts hidden in the tray.
	Background bool
}

// Run shows the desktop UI and blocks until the user quits or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, application *app.App, options Options) error {
	logger := log.WithComponent("desktop")

	guard, err := platform.AcquireSingleInstance(app.Name)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info().Str(log.FieldEvent, "desktop.already_running").Msg("raised running instance")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.Debug().Str("address", guard.Address()).Msg("instance lock acquired")

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.LogoActive))

	ui := newController(fyneApp, application, options, logger)
	guard.OnActivate(func() {
		fyne.Do(ui.main.Show)
	})

	events := application.Keeper().Subscribe(64)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				ui.handle(event)
			})
		}
	}()

	stop := context.AfterFunc(ctx, func() {
		fyne.Do(fyneApp.Quit)
	})
	defer stop()

	if options.Background && ui.tray != nil {
		ui.main.Window().Hide()
	} else {
		ui.main.Show()
	}
	logger.Info().Str(log.FieldEvent, "desktop.started").Msg("desktop front end started")
	fyneApp.Run()
	return nil
}

// controller routes keeper events and settings changes to the windows.
type controller struct {
	fyneApp     fyne.App
	application *app.App
	logger      zerolog.Logger

	main  *MainWindow
	toast *overlay.Window
	prefs *preferences.Window
	tray  *tray.Manager

	version    string
	lastCounts sessions.Counts
	fresh      []achievements.Achievement
}

func newController(fyneApp fyne.App, application *app.App, options Options, logger zerolog.Logger) *controller {
	ui := &controller{
		fyneApp:     fyneApp,
		application: application,
		logger:      logger,
		version:     options.Version,
	}
	keeper := application.Keeper()
	translator := application.Translator()

	ui.toast = overlay.New(fyneApp, overlay.Config{Opacity: 235, Notify: true})
	ui.toast.SetOnSkip(keeper.SkipTransition)

	ui.prefs = preferences.New(fyneApp, translator, application.Settings(), application.ApplySettings)
	ui.prefs.SetOnCancel(func() {
		ui.main.Window().RequestFocus()
	})

	ui.main = NewMainWindow(fyneApp, application, Actions{
		OnSettings:     ui.showSettings,
		OnBackground:   ui.showBackgroundPicker,
		OnAchievements: ui.showAchievements,
		OnAbout:        ui.showAbout,
	})

	if desktopApp, ok := fyneApp.(fynedesktop.App); ok {
		ui.tray = tray.New(desktopApp, translator, tray.Callbacks{
			OnToggle:     keeper.Toggle,
			OnReset:      keeper.Reset,
			OnSwitchMode: keeper.SwitchMode,
			OnShowWindow: ui.main.Show,
			OnQuit:       fyneApp.Quit,
		})
		ui.tray.Update(keeper.Snapshot())
		ui.main.Window().SetCloseIntercept(ui.main.Window().Hide)
	} else {
		logger.Warn().Str(log.FieldEvent, "desktop.tray_unsupported").Msg("system tray unsupported on this platform")
		ui.main.Window().SetMaster()
	}

	ui.lastCounts = keeper.Snapshot().Counts
	application.OnSettingsChange(func(updated settings.Settings) {
		fyne.Do(func() {
			ui.applySettings(updated)
		})
	})
	return ui
}

func (ui *controller) handle(event timekeeper.Event) {
	ui.main.Render(event.Snapshot)
	if ui.tray != nil {
		ui.tray.Update(event.Snapshot)
	}

	switch event.Type {
	case timekeeper.EventCompleted:
		ui.toast.Show(overlay.ContentFor(ui.application.Translator(), event.Mode, event.Next))
		ui.announceAchievements(event.Counts)
	case timekeeper.EventStateChange:
		if !event.PendingTransition && ui.toast.Visible() {
			ui.toast.Hide()
		}
	case timekeeper.EventIdlePause:
		translator := ui.application.Translator()
		ui.fyneApp.SendNotification(fyne.NewNotification(translator.T("appName"), translator.T("idlePaused")))
	}
}

func (ui *controller) announceAchievements(counts sessions.Counts) {
	unlocked := achievements.Unlocked(ui.lastCounts, counts)
	ui.lastCounts = counts
	if len(unlocked) == 0 {
		return
	}
	ui.fresh = append(ui.fresh, unlocked...)

	translator := ui.application.Translator()
	for _, achievement := range unlocked {
		message := translator.Tf("achievementUnlocked", map[string]any{"Name": translator.T(achievement.NameKey)})
		ui.fyneApp.SendNotification(fyne.NewNotification(translator.T("achievements"), message))
		ui.logger.Info().
			Str(log.FieldEvent, "achievement.unlocked").
			Str("achievement", achievement.ID).
			Msg("achievement unlocked")
	}
}

func (ui *controller) applySettings(updated settings.Settings) {
	translator := ui.application.Translator()
	ui.main.Relabel(translator)
	ui.main.SetBackground(appearance.Lookup(updated.Background))
	ui.prefs.UpdateSettings(translator, updated)
	if ui.tray != nil {
		ui.tray.SetTranslator(translator)
	}
}

func (ui *controller) showSettings() {
	ui.prefs.UpdateSettings(ui.application.Translator(), ui.application.Settings())
	ui.prefs.Show()
}

func (ui *controller) showBackgroundPicker() {
	dialogs.ShowBackgroundPicker(ui.main.Window(), ui.application.Translator(), ui.application.Settings().Background, ui.application.SetBackground)
}

func (ui *controller) showAchievements() {
	counts := ui.application.Keeper().Snapshot().Counts
	dialogs.ShowAchievements(ui.main.Window(), ui.application.Translator(), counts, ui.fresh)
	ui.fresh = nil
}

func (ui *controller) showAbout() {
	dialogs.ShowAbout(ui.main.Window(), ui.application.Translator(), ui.version)
}
