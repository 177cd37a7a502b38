package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"steadystate/internal/app"
	"steadystate/internal/log"
	"steadystate/internal/platform"
	"steadystate/internal/ui/terminal"
)

func newTUICmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin, os.Stdout) {
				return ErrNotTerminal
			}

			logFile, err := openTUILog()
			if err != nil {
				return err
			}
			defer logFile.Close()
			configureLogging(options.debug, logFile)

			return runApp(cmd.Context(), options, runTerminal)
		},
	}
}

func runTerminal(ctx context.Context, application *app.App) error {
	keeper := application.Keeper()
	keeper.SetIdleChecker(platform.NewIdleProvider())
	return terminal.Run(ctx, keeper, application, keeper.Subscribe(64))
}

// openTUILog keeps log output off the terminal the UI draws on.
func openTUILog() (*os.File, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user cache dir: %w", err)
	}
	file, err := log.OpenFile(filepath.Join(cacheDir, app.Name, "tui.log"))
	if err != nil {
		return nil, fmt.Errorf("open tui log: %w", err)
	}
	return file, nil
}
