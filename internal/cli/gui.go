package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"steadystate/internal/app"
	"steadystate/internal/platform"
	"steadystate/internal/ui/desktop"
)

func newGUICmd(options *rootOptions) *cobra.Command {
	var background bool
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop timer (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), options, background)
		},
	}
	cmd.Flags().BoolVar(&background, "tray", false, "start hidden in the system tray")
	return cmd
}

func runGUI(ctx context.Context, options *rootOptions, background bool) error {
	configureLogging(options.debug, os.Stderr)
	return runApp(ctx, options, func(ctx context.Context, application *app.App) error {
		application.Keeper().SetIdleChecker(platform.NewIdleProvider())
		return desktop.Run(ctx, application, desktop.Options{Version: Version, Background: background})
	})
}
