package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"travelshowcase/internal/app"
	"travelshowcase/internal/config"
)

var (
	catalogPath string
	sourceFlag  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "showcase",
	Short:         "Travel destination showcase",
	Long:          "Browse, inspect and seed the travel destination showcase from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: CATALOG_PATH or the built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Destination source, file or mongo (default: DESTINATIONS_SOURCE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	switch sourceFlag {
	case "":
	case config.SourceFile, config.SourceMongo:
		cfg.Source = sourceFlag
	default:
		return nil, fmt.Errorf("--source must be %q or %q, got %q", config.SourceFile, config.SourceMongo, sourceFlag)
	}
	return cfg, nil
}

// commandLogger keeps terminal output clean unless --verbose is set.
func commandLogger(cfg *config.Config) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// openShowcase loads the configured destinations for a command.
func openShowcase(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, cfg, commandLogger(cfg))
}
