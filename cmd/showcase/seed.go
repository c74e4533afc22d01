package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelshowcase/internal/db"
	"travelshowcase/internal/destinations"
)

var seedDryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a catalog into MongoDB",
	Long:  "Validate the catalog file (or the built-in catalog) and replace the MongoDB destinations collection with it",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate the catalog without writing to MongoDB")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := commandLogger(cfg)
	out := cmd.OutOrStdout()

	list, err := destinations.NewFileStore(cfg.CatalogPath).List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "catalog ok: %d destinations\n", len(list))
	if seedDryRun {
		return nil
	}

	log.Info("connecting to MongoDB", "uri", cfg.MongoURI, "database", cfg.MongoDatabase)
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer db.Disconnect(ctx, database)

	repo := destinations.NewRepo(database)
	if err := repo.ReplaceAll(ctx, list); err != nil {
		return err
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	total, err := repo.Count(ctx, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "seeded %d destinations into %s\n", total, cfg.MongoDatabase)
	for _, c := range categories {
		fmt.Fprintf(out, "  %-10s %d\n", c.Name, c.Count)
	}
	return nil
}
