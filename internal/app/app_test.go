package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"travelshowcase/internal/config"
	"travelshowcase/internal/destinations"
)

func testConfig() *config.Config {
	return &config.Config{
		Source:         config.SourceFile,
		PageSize:       4,
		PageStep:       2,
		SearchDebounce: 100 * time.Millisecond,
		Locale:         language.English,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenFileSource(t *testing.T) {
	a, err := Open(context.Background(), testConfig(), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Nil(t, a.Database)
	assert.Len(t, a.Service.Records(), 12)
	assert.Equal(t, 100*time.Millisecond, a.Service.Debounce())

	result := a.Service.Browse(context.Background(), destinations.BrowseQuery{})
	assert.Len(t, result.Destinations, 4)
	assert.Equal(t, 6, result.NextVisible)
}

func TestOpenInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("destinations:\n  - title: Nowhere\n"), 0o644))

	cfg := testConfig()
	cfg.CatalogPath = path

	_, err := Open(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, destinations.ErrInvalidCatalog)
}
