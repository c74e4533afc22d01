package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"travelshowcase/internal/explorer"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse destinations interactively",
	Long:  "Open the terminal explorer: / to search, tab to change category, s to sort, m to load more, q to quit",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	showcase, err := openShowcase(ctx)
	if err != nil {
		return err
	}
	defer showcase.Close(ctx)

	return explorer.Run(ctx, showcase.Service)
}
