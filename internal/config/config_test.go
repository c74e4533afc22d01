package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "LOG_LEVEL", "DESTINATIONS_SOURCE", "CATALOG_PATH", "PAGE_SIZE", "PAGE_STEP", "SEARCH_DEBOUNCE", "COLLATION_LOCALE", "TRACING_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7521", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 3, cfg.PageStep)
	assert.Equal(t, 220*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, language.English, cfg.Locale)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DESTINATIONS_SOURCE", "Mongo")
	t.Setenv("PAGE_SIZE", "4")
	t.Setenv("PAGE_STEP", "0")
	t.Setenv("SEARCH_DEBOUNCE", "300")
	t.Setenv("COLLATION_LOCALE", "fr")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, SourceMongo, cfg.Source)
	assert.Equal(t, 4, cfg.PageSize)
	assert.Equal(t, 3, cfg.PageStep, "non-positive step falls back")
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce, "bare numbers are milliseconds")
	assert.Equal(t, language.French, cfg.Locale)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DESTINATIONS_SOURCE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "DESTINATIONS_SOURCE")
}
