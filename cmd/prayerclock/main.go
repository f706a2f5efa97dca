package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/prayerclock/internal/app"
)

var (
	configPath     string
	prefsPath      string
	refreshMinutes int
)

var rootCmd = &cobra.Command{
	Use:   "prayerclock",
	Short: "Daily prayer times with a countdown to the next prayer",
	Long: `prayerclock shows today's five prayer times for the configured city and
counts down to the next one. Timings come from the Al Adhan API and fall back
to a fixed schedule when the API cannot be reached.

Run without a subcommand to start the terminal UI.`,
	SilenceUsage: true,
	RunE:         runUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/prayerclock/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/prayerclock/prefs.toml)")
	rootCmd.Flags().IntVar(&refreshMinutes, "refresh", 0, "refresh interval in minutes (default from config)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(nextCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prayerclock: %v\n", err)
		os.Exit(1)
	}
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath:     configPath,
		PrefsPath:      prefsPath,
		RefreshMinutes: refreshMinutes,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), appOptions())
}
