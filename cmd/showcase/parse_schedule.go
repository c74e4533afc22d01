package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travelshowcase/internal/cards"
)

var parseScheduleCmd = &cobra.Command{
	Use:   "parse-schedule <value>",
	Short: "Show how a schedule is read for time sorting",
	Long:  "Parse a travel time such as 14:30, 2h 30m, 45 min or 150 and print its minutes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParseSchedule,
}

func init() {
	rootCmd.AddCommand(parseScheduleCmd)
}

func runParseSchedule(cmd *cobra.Command, args []string) error {
	s := cards.ParseSchedule(strings.Join(args, " "))
	if !s.Known {
		fmt.Fprintf(cmd.OutOrStdout(), "%q: unknown (sorts last)\n", s.Raw)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q: %d minutes\n", s.Raw, s.Minutes)
	return nil
}
