package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/prayerclock/internal/app"
	"github.com/five82/prayerclock/internal/provider"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's prayer times",
	Long: `Print today's prayer times and mark the next prayer.

Examples:
  # Timings for the configured city
  prayerclock today

  # Another city, through the environment
  PRAYERCLOCK_CITY=Alexandria prayerclock today
`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func runToday(cmd *cobra.Command, _ []string) error {
	res, err := fetchOnce(cmd)
	if err != nil {
		return err
	}
	writeSourceWarning(cmd.ErrOrStderr(), res)
	return writeToday(cmd.OutOrStdout(), res.Schedule, time.Now())
}

// fetchOnce builds the provider stack and fetches a single schedule.
func fetchOnce(cmd *cobra.Command) (provider.Result, error) {
	svc, err := app.Setup(cmd.Context(), appOptions())
	if err != nil {
		return provider.Result{}, err
	}
	defer func() { _ = svc.Close() }()
	return svc.Provider.Fetch(cmd.Context()), nil
}
