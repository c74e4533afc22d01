// Package config loads the showcase settings from the environment.
//
// A .env file in the working directory is read first when present;
// variables already set in the environment win.
//
//   - PORT: HTTP listen port (default: 7521)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - DESTINATIONS_SOURCE: "file" or "mongo" (default: file)
//   - CATALOG_PATH: YAML catalog; empty uses the built-in catalog
//   - MONGODB_URI: MongoDB connection string (default: mongodb://localhost:27017)
//   - MONGODB_DATABASE: database name (default: showcase)
//   - PAGE_SIZE: cards revealed initially (default: 6)
//   - PAGE_STEP: cards revealed per load-more (default: 3)
//   - SEARCH_DEBOUNCE: quiet window for search input (default: 220ms)
//   - COLLATION_LOCALE: BCP 47 tag used to order titles (default: en)
//   - TRACING_ENABLED: export OpenTelemetry spans (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC collector (default: localhost:4317)
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	SourceFile  = "file"
	SourceMongo = "mongo"
)

type Config struct {
	Port     string
	LogLevel slog.Level

	Source      string
	CatalogPath string

	MongoURI      string
	MongoDatabase string

	PageSize       int
	PageStep       int
	SearchDebounce time.Duration
	Locale         language.Tag

	TracingEnabled  bool
	TracingEndpoint string
}

// Load reads the configuration. Malformed numbers and durations fall back
// to their defaults; an unknown source or locale is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "7521"),
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
		Source:          strings.ToLower(getEnv("DESTINATIONS_SOURCE", SourceFile)),
		CatalogPath:     getEnv("CATALOG_PATH", ""),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "showcase"),
		PageSize:        getEnvInt("PAGE_SIZE", 6),
		PageStep:        getEnvInt("PAGE_STEP", 3),
		SearchDebounce:  getEnvDuration("SEARCH_DEBOUNCE", 220*time.Millisecond),
		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	switch cfg.Source {
	case SourceFile, SourceMongo:
	default:
		return nil, fmt.Errorf("DESTINATIONS_SOURCE must be %q or %q, got %q", SourceFile, SourceMongo, cfg.Source)
	}

	locale, err := language.Parse(getEnv("COLLATION_LOCALE", "en"))
	if err != nil {
		return nil, fmt.Errorf("parse COLLATION_LOCALE: %w", err)
	}
	cfg.Locale = locale

	if cfg.PageSize < 0 {
		cfg.PageSize = 6
	}
	if cfg.PageStep <= 0 {
		cfg.PageStep = 3
	}

	return cfg, nil
}

// Logger builds the process logger at the configured level.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
