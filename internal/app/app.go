// Package app wires the configured destination store into a loaded
// service for the showcase binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"travelshowcase/internal/cards"
	"travelshowcase/internal/config"
	"travelshowcase/internal/db"
	"travelshowcase/internal/destinations"
)

// App is a loaded destination service plus whatever backs it.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Service *destinations.Service

	// Database is nil unless the store is MongoDB.
	Database *mongo.Database
}

// Open connects the configured store and loads the destination snapshot.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	var store destinations.Store
	switch cfg.Source {
	case config.SourceMongo:
		log.Info("connecting to MongoDB", "uri", cfg.MongoURI, "database", cfg.MongoDatabase)
		database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		a.Database = database

		repo := destinations.NewRepo(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn("failed to ensure indexes", "error", err)
		}
		store = repo
	default:
		log.Info("using catalog file", "path", catalogName(cfg.CatalogPath))
		store = destinations.NewFileStore(cfg.CatalogPath)
	}

	a.Service = destinations.NewService(store,
		destinations.WithPaging(cards.Paging{Size: cfg.PageSize, Step: cfg.PageStep}),
		destinations.WithLocale(cfg.Locale),
		destinations.WithDebounce(cfg.SearchDebounce),
		destinations.WithLogger(log),
	)
	if err := a.Service.Load(ctx); err != nil {
		_ = a.Close(context.Background())
		return nil, fmt.Errorf("open showcase: %w", err)
	}
	return a, nil
}

// Close releases the database connection, if any.
func (a *App) Close(ctx context.Context) error {
	return db.Disconnect(ctx, a.Database)
}

func catalogName(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}
