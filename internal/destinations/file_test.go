package destinations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	list := DefaultCatalog()
	require.Len(t, list, 12)

	for i, d := range list {
		assert.Equal(t, i, d.Position)
		assert.NotEmpty(t, d.Title)
		assert.Contains(t, []string{"beach", "temple", "city"}, d.Category)
	}
	assert.Equal(t, "Bali, Indonesia", list[0].Title)
	assert.Empty(t, list[3].Schedule, "Shwedagon has no schedule")
}

func TestParseCatalogNormalisesEntries(t *testing.T) {
	list, err := ParseCatalog([]byte(`
destinations:
  - title: "  Paris  "
    category: " City "
    schedule: 3h
  - title: Bali
    category: beach
`))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Paris", list[0].Title)
	assert.Equal(t, "city", list[0].Category)
	assert.Equal(t, 1, list[1].Position)
}

func TestParseCatalogRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "destinations: ["},
		{"missing title", "destinations:\n  - category: beach\n"},
		{"missing category", "destinations:\n  - title: Bali\n"},
		{"reserved category", "destinations:\n  - title: Bali\n    category: All\n"},
		{"bad time zone", "destinations:\n  - title: Bali\n    category: beach\n    time_zone: Mars/Olympus\n"},
		{"bad link", "destinations:\n  - title: Bali\n    category: beach\n    link: not a url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded", func(t *testing.T) {
		list, err := NewFileStore("").List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 12)
	})

	t.Run("from path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("destinations:\n  - title: Oslo\n    category: city\n"), 0o644))

		list, err := NewFileStore(path).List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Oslo", list[0].Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileStore(filepath.Join(t.TempDir(), "nope.yaml")).List(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewFileStore("").List(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
