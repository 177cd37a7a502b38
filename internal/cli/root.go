package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"steadystate/internal/app"
	"steadystate/internal/core/model"
	"steadystate/internal/log"
	"steadystate/internal/settings"
	"steadystate/internal/storage"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// ErrNotTerminal is returned by the tui command when stdin or stdout is not a TTY.
var ErrNotTerminal = errors.New("terminal UI needs an interactive terminal")

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	debug      bool
	mode       string
	overrides  overrides
}

// overrides are flag values that win over the settings file.
type overrides struct {
	language   string
	background string
	focus      int
	short      int
	long       int
}

func (values overrides) apply(target settings.Settings) settings.Settings {
	if values.language != "" {
		target.Language = values.language
	}
	if values.background != "" {
		target.Background = values.background
	}
	if values.focus != 0 {
		target.FocusMinutes = values.focus
	}
	if values.short != 0 {
		target.ShortBreakMinutes = values.short
	}
	if values.long != 0 {
		target.LongBreakMinutes = values.long
	}
	return target
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "steadystate",
		Short:        "SteadyState: a focus timer for the desktop and the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), options, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&options.configPath, "config", "", "settings file (default: user config dir)")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.StringVar(&options.mode, "mode", "", "mode to open in (focus, short or long)")
	flags.StringVar(&options.overrides.language, "language", "", "UI language (en, tr or auto)")
	flags.StringVar(&options.overrides.background, "background", "", "background gradient id (gradient1-gradient6)")
	flags.IntVar(&options.overrides.focus, "focus", 0, "focus duration in minutes")
	flags.IntVar(&options.overrides.short, "short", 0, "short break duration in minutes")
	flags.IntVar(&options.overrides.long, "long", 0, "long break duration in minutes")

	cmd.AddCommand(newGUICmd(options), newTUICmd(options), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Name, Version)
			return err
		},
	}
}

// frontend runs one UI until it exits or ctx is done.
type frontend func(ctx context.Context, application *app.App) error

// runApp loads settings, builds the application and runs ui alongside the
// settings watcher. ui runs on the calling goroutine.
func runApp(ctx context.Context, options *rootOptions, ui frontend) error {
	logger := log.WithComponent("cli")

	startMode := model.ModeFocus
	if options.mode != "" {
		parsed, ok := model.ParseMode(options.mode)
		if !ok {
			return fmt.Errorf("unknown mode %q", options.mode)
		}
		startMode = parsed
	}

	path, err := resolveConfigPath(options.configPath)
	if err != nil {
		return err
	}
	loaded, err := storage.LoadSettings(path)
	if err != nil {
		logger.Warn().Err(err).Str(log.FieldPath, path).Msg("using default settings")
	}
	application := app.New(options.overrides.apply(loaded), app.Options{})
	defer application.Close()
	if startMode != model.ModeFocus {
		application.Keeper().SwitchMode(startMode)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, groupCtx := errgroup.WithContext(ctx)

	if watchable(path) {
		group.Go(func() error {
			return storage.Watch(groupCtx, path, func(reloaded settings.Settings) {
				application.ApplySettings(options.overrides.apply(reloaded))
			})
		})
	} else {
		logger.Debug().Str(log.FieldPath, path).Msg("settings directory missing, hot reload disabled")
	}

	runErr := ui(groupCtx, application)
	cancel()
	return errors.Join(runErr, group.Wait())
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	path, err := storage.DefaultPath(app.Name)
	if err != nil {
		return "", fmt.Errorf("settings path: %w", err)
	}
	return path, nil
}

func watchable(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}

func configureLogging(debug bool, output io.Writer) {
	level := ""
	if debug {
		level = "debug"
	}
	log.Configure(log.Config{Level: level, Output: output, Service: "steadystate"})
}

func isTerminal(files ...*os.File) bool {
	for _, file := range files {
		if !term.IsTerminal(int(file.Fd())) {
			return false
		}
	}
	return true
}
