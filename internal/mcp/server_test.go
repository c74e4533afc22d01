package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshowcase/internal/destinations"
)

func newTestService(t *testing.T) *destinations.Service {
	t.Helper()

	svc := destinations.NewService(destinations.NewFileStore(""))
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()

	require.False(t, result.IsError, resultText(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}

func TestListCategoriesTool(t *testing.T) {
	var categories []CategoryResult
	decodeResult(t, callTool(t, handleListCategories(newTestService(t)), nil), &categories)

	require.Len(t, categories, 3)
	assert.Equal(t, CategoryResult{Name: "beach", Label: "Beach", Count: 4}, categories[0])
}

func TestBrowseDestinationsTool(t *testing.T) {
	handler := handleBrowseDestinations(newTestService(t))

	t.Run("defaults", func(t *testing.T) {
		var out BrowseResult
		decodeResult(t, callTool(t, handler, nil), &out)

		assert.Equal(t, "all", out.Category)
		assert.Equal(t, "relevance", out.Sort)
		assert.Len(t, out.Destinations, 6)
		assert.True(t, out.MoreAvailable)
		assert.Equal(t, 9, out.NextVisible)
	})

	t.Run("filtered and sorted", func(t *testing.T) {
		var out BrowseResult
		decodeResult(t, callTool(t, handler, map[string]any{
			"category": "city",
			"sort":     "name-asc",
		}), &out)

		titles := make([]string, len(out.Destinations))
		for i, d := range out.Destinations {
			titles[i] = d.Title
		}
		assert.Equal(t, []string{"Helsinki, Finland", "Lisbon, Portugal", "Paris, France", "Toronto, Canada"}, titles)
		assert.False(t, out.MoreAvailable)
	})

	t.Run("search with more visible", func(t *testing.T) {
		var out BrowseResult
		decodeResult(t, callTool(t, handler, map[string]any{
			"query":   "temple",
			"visible": 1,
		}), &out)

		assert.Equal(t, "temple", out.Query)
		assert.Equal(t, 2, out.Matched)
		assert.Len(t, out.Destinations, 1)
		assert.True(t, out.MoreAvailable)
	})
}

func TestGetDestinationTool(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }
	handler := handleGetDestination(newTestService(t), now)

	var out DestinationResult
	decodeResult(t, callTool(t, handler, map[string]any{"index": 5}), &out)
	assert.Equal(t, "Paris, France", out.Title)
	assert.Equal(t, "13:00", out.LocalTime)
	require.NotNil(t, out.Minutes)
	assert.Equal(t, 180, *out.Minutes)

	result := callTool(t, handler, map[string]any{"index": 99})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "no destination with index 99")

	result = callTool(t, handler, nil)
	assert.True(t, result.IsError)
}

func TestParseScheduleTool(t *testing.T) {
	handler := handleParseSchedule()

	var out ScheduleResult
	decodeResult(t, callTool(t, handler, map[string]any{"value": "45 min"}), &out)
	assert.Equal(t, ScheduleResult{Raw: "45 min", Minutes: 45, Known: true}, out)

	decodeResult(t, callTool(t, handler, map[string]any{"value": "whenever"}), &out)
	assert.False(t, out.Known)

	result := callTool(t, handler, nil)
	assert.True(t, result.IsError)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(newTestService(t)))
}
