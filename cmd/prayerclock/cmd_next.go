package main

import (
	"time"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next prayer and the time left until it",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, _ []string) error {
	res, err := fetchOnce(cmd)
	if err != nil {
		return err
	}
	writeSourceWarning(cmd.ErrOrStderr(), res)
	return writeNext(cmd.OutOrStdout(), res.Schedule, time.Now())
}
