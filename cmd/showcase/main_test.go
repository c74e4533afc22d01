package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	catalogPath, sourceFlag, verbose = "", "", false
	listCategory, listQuery, listSort, listVisible = "all", "", "relevance", 0
	seedDryRun = false
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)
	t.Setenv("DESTINATIONS_SOURCE", "file")
	t.Setenv("CATALOG_PATH", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseScheduleCommand(t *testing.T) {
	out, err := execute(t, "parse-schedule", "2h", "30m")
	require.NoError(t, err)
	assert.Equal(t, "\"2h 30m\": 150 minutes\n", out)

	out, err = execute(t, "parse-schedule", "sometime")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--category", "beach", "--sort", "time-asc")
	require.NoError(t, err)

	maldives := strings.Index(out, "Maldives")
	bora := strings.Index(out, "Bora Bora")
	require.NotEqual(t, -1, maldives)
	require.NotEqual(t, -1, bora)
	assert.Less(t, maldives, bora, "shortest trip first")
	assert.NotContains(t, out, "Paris")
	assert.Contains(t, out, "showing 4 of 4 (filter=beach sort=time-asc)")
	assert.NotContains(t, out, "more available")
}

func TestListCommandPaging(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "showing 6 of 12")
	assert.Contains(t, out, "more available: --visible 9")
}

func TestListCommandNoMatch(t *testing.T) {
	out, err := execute(t, "list", "--query", "atlantis")
	require.NoError(t, err)
	assert.Equal(t, "No destinations match your search.\n", out)
}

func TestListCommandCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("destinations:\n  - title: Oslo\n    category: city\n    schedule: 1h\n"), 0o644))

	out, err := execute(t, "list", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Oslo")
	assert.Contains(t, out, "showing 1 of 1")
}

func TestSeedDryRun(t *testing.T) {
	out, err := execute(t, "seed", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "catalog ok: 12 destinations\n", out)
}

func TestInvalidSourceFlag(t *testing.T) {
	_, err := execute(t, "list", "--source", "ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--source")
}
