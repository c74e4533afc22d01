package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"travelshowcase/internal/destinations"
)

var (
	listCategory string
	listQuery    string
	listSort     string
	listVisible  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one computed card view",
	Long:  "Filter, search, sort and paginate the destinations once and print the shown cards as a table",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "all", "Category filter")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Search text matched against title and description")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "relevance", "Sort mode (relevance, name-asc, name-desc, time-asc, time-desc)")
	listCmd.Flags().IntVarP(&listVisible, "visible", "n", 0, "Number of cards to reveal (default: first page)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	showcase, err := openShowcase(ctx)
	if err != nil {
		return err
	}
	defer showcase.Close(ctx)

	result := showcase.Service.Browse(ctx, destinations.BrowseQuery{
		Filter:  listCategory,
		Query:   listQuery,
		Sort:    listSort,
		Visible: listVisible,
	})

	out := cmd.OutOrStdout()
	if result.Empty {
		fmt.Fprintln(out, "No destinations match your search.")
		return nil
	}

	rows := make([][]string, len(result.Destinations))
	for i, d := range result.Destinations {
		rec := result.Shown[i]
		minutes := "-"
		if rec.Schedule.Known {
			minutes = strconv.Itoa(rec.Schedule.Minutes)
		}
		rows[i] = []string{strconv.Itoa(rec.Index), d.Title, d.Category, d.Schedule, minutes}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "TITLE", "CATEGORY", "SCHEDULE", "MINUTES").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())

	fmt.Fprintf(out, "showing %d of %d (filter=%s sort=%s)\n",
		len(result.Destinations), result.Matched, result.State.ActiveFilter, result.State.SortMode)
	if result.MoreAvailable {
		fmt.Fprintf(out, "more available: --visible %d\n", result.NextVisible)
	}
	return nil
}
