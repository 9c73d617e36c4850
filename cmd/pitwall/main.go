package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pitwall/internal/bootstrap"
	"pitwall/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "pitwall",
		Short:         "Race weekend notes, setups and itineraries, kept per session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "directory holding pitwall.yaml and local data")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newNoteCmd(&dataDir))
	root.AddCommand(newSetupCmd(&dataDir))
	root.AddCommand(newWeekendCmd(&dataDir))
	root.AddCommand(newFavoriteCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newThemeCmd(&dataDir))
	root.AddCommand(newTracksCmd(&dataDir))
	root.AddCommand(newTeamCmd(&dataDir))
	return root
}

func loadApp(ctx context.Context, dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, nil)
}

// withApp opens the app for one command and closes the store afterwards.
func withApp(cmd *cobra.Command, dataDir string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := loadApp(ctx, dataDir)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the pitwall terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, bootstrap.RunTUI)
		},
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func yesNo(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
