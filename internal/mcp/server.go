package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelshowcase/internal/cards"
	"travelshowcase/internal/destinations"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for browsing the destination
// showcase
func NewServer(svc *destinations.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Travel Showcase",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	sortKeys := make([]string, len(cards.SortModes))
	for i, mode := range cards.SortModes {
		sortKeys[i] = string(mode)
	}

	// Tool: list_categories - List all categories with counts
	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List the destination categories with the number of destinations in each. Use these names as the 'category' filter of browse_destinations."),
		),
		handleListCategories(svc),
	)

	// Tool: browse_destinations - Filter, search, sort and page the cards
	s.AddTool(
		mcp.NewTool("browse_destinations",
			mcp.WithDescription("Browse destination cards the way the showcase page does: filter by category, search title and description, sort, and reveal a number of cards. Returns the shown cards in order plus whether more are available."),
			mcp.WithString("category",
				mcp.Description("Category name, or 'all' for every category (default: all)"),
			),
			mcp.WithString("query",
				mcp.Description("Optional: case-insensitive text matched against title and description"),
			),
			mcp.WithString("sort",
				mcp.Description("Sort order (default: relevance)"),
				mcp.Enum(sortKeys...),
			),
			mcp.WithNumber("visible",
				mcp.Description("Number of cards to reveal (default: the first page). Add the page step to load more."),
			),
		),
		handleBrowseDestinations(svc),
	)

	// Tool: get_destination - Get one destination by index
	s.AddTool(
		mcp.NewTool("get_destination",
			mcp.WithDescription("Get a destination by its index, including the rendered description and current local time."),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("The destination index as returned by browse_destinations"),
			),
		),
		handleGetDestination(svc, time.Now),
	)

	// Tool: parse_schedule - Interpret a travel time expression
	s.AddTool(
		mcp.NewTool("parse_schedule",
			mcp.WithDescription("Parse a travel time expression ('14:30', '2h 30m', '45 min', '150') into minutes, as used for time sorting."),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("The schedule text"),
			),
		),
		handleParseSchedule(),
	)

	return s
}

// CategoryResult represents a category with its destination count
type CategoryResult struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DestinationResult represents a destination card in tool responses
type DestinationResult struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Schedule    string `json:"schedule,omitempty"`
	Minutes     *int   `json:"minutes,omitempty"`
	TimeZone    string `json:"timeZone,omitempty"`
	LocalTime   string `json:"localTime,omitempty"`
	Link        string `json:"link,omitempty"`
}

// BrowseResult is one computed card list
type BrowseResult struct {
	Category      string              `json:"category"`
	Query         string              `json:"query"`
	Sort          string              `json:"sort"`
	Visible       int                 `json:"visible"`
	Matched       int                 `json:"matched"`
	Total         int                 `json:"total"`
	MoreAvailable bool                `json:"moreAvailable"`
	NextVisible   int                 `json:"nextVisible"`
	Destinations  []DestinationResult `json:"destinations"`
}

// ScheduleResult is a parsed schedule
type ScheduleResult struct {
	Raw     string `json:"raw"`
	Minutes int    `json:"minutes"`
	Known   bool   `json:"known"`
}

func handleListCategories(svc *destinations.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories := svc.Categories()

		results := make([]CategoryResult, len(categories))
		for i, cat := range categories {
			results[i] = CategoryResult{
				Name:  cat.Name,
				Label: cat.Label,
				Count: cat.Count,
			}
		}

		return jsonResult(results)
	}
}

func handleBrowseDestinations(svc *destinations.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := svc.Browse(ctx, destinations.BrowseQuery{
			Filter:  req.GetString("category", cards.FilterAll),
			Query:   req.GetString("query", ""),
			Sort:    req.GetString("sort", string(cards.SortRelevance)),
			Visible: req.GetInt("visible", 0),
		})

		out := BrowseResult{
			Category:      result.State.ActiveFilter,
			Query:         result.State.SearchQuery,
			Sort:          string(result.State.SortMode),
			Visible:       result.State.VisibleCount,
			Matched:       result.Matched,
			Total:         result.Total,
			MoreAvailable: result.MoreAvailable,
			NextVisible:   result.NextVisible,
			Destinations:  make([]DestinationResult, len(result.Destinations)),
		}
		for i, d := range result.Destinations {
			out.Destinations[i] = destinationToResult(d, result.Shown[i])
		}

		return jsonResult(out)
	}
}

func handleGetDestination(svc *destinations.Service, now func() time.Time) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := req.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError("index is required"), nil
		}

		d, err := svc.Get(index)
		if errors.Is(err, destinations.ErrDestinationNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no destination with index %d", index)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get destination: %v", err)), nil
		}

		result := destinationToResult(d, svc.Records()[index])
		if local, ok := svc.LocalTime(index, now()); ok {
			result.LocalTime = local
		}

		return jsonResult(result)
	}
}

func handleParseSchedule() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, err := req.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError("value is required"), nil
		}

		s := cards.ParseSchedule(value)
		return jsonResult(ScheduleResult{Raw: s.Raw, Minutes: s.Minutes, Known: s.Known})
	}
}

// Helper functions

func destinationToResult(d *destinations.Destination, rec cards.Record) DestinationResult {
	result := DestinationResult{
		Index:       rec.Index,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Schedule:    d.Schedule,
		TimeZone:    d.TimeZone,
		Link:        d.Link,
	}
	if rec.Schedule.Known {
		minutes := rec.Schedule.Minutes
		result.Minutes = &minutes
	}
	return result
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
