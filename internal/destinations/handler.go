package destinations

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"travelshowcase/internal/cards"
	"travelshowcase/internal/clock"
	"travelshowcase/views/components"
	"travelshowcase/views/models"
	"travelshowcase/views/pages"
)

const pageTitle = "Explore destinations"

type Handler struct {
	svc   *Service
	log   *slog.Logger
	clock clock.Clock
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log, clock: clock.Real()}
}

// Register mounts the page, fragment and API routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HomePage)
	r.Get("/fragments/destinations", h.DestinationsFragment)

	r.Route("/api", func(r chi.Router) {
		r.Get("/destinations", h.ListDestinations)
		r.Get("/destinations/{index}", h.GetDestination)
		r.Get("/categories", h.ListCategories)
		r.Get("/schedule", h.ParseSchedule)
	})
}

// --- REST API Handlers ---

type destinationJSON struct {
	*Destination
	DescriptionHTML string `json:"descriptionHtml"`
	LocalTime       string `json:"localTime,omitempty"`
	ScheduleMinutes *int   `json:"scheduleMinutes,omitempty"`
}

type buttonJSON struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Pressed bool   `json:"pressed"`
}

type browseJSON struct {
	Filter        string            `json:"filter"`
	Query         string            `json:"query"`
	Sort          string            `json:"sort"`
	Visible       int               `json:"visible"`
	Matched       int               `json:"matched"`
	Total         int               `json:"total"`
	Empty         bool              `json:"empty"`
	MoreAvailable bool              `json:"moreAvailable"`
	NextVisible   int               `json:"nextVisible"`
	Buttons       []buttonJSON      `json:"buttons"`
	Destinations  []destinationJSON `json:"destinations"`
	Hidden        []int             `json:"hidden"`
}

type scheduleJSON struct {
	Raw     string `json:"raw"`
	Minutes int    `json:"minutes"`
	Known   bool   `json:"known"`
}

// ListDestinations handles GET /api/destinations
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Browse(r.Context(), h.browseQuery(r))

	resp := browseJSON{
		Filter:        result.State.ActiveFilter,
		Query:         result.State.SearchQuery,
		Sort:          string(result.State.SortMode),
		Visible:       result.State.VisibleCount,
		Matched:       result.Matched,
		Total:         result.Total,
		Empty:         result.Empty,
		MoreAvailable: result.MoreAvailable,
		NextVisible:   result.NextVisible,
		Buttons:       make([]buttonJSON, len(result.Buttons)),
		Destinations:  make([]destinationJSON, len(result.Destinations)),
		Hidden:        make([]int, len(result.Hidden)),
	}
	for i, b := range result.Buttons {
		resp.Buttons[i] = buttonJSON{Key: b.Key, Label: b.Label, Pressed: b.Pressed}
	}
	for i, d := range result.Destinations {
		resp.Destinations[i] = h.destinationToJSON(d, result.Shown[i])
	}
	for i, rec := range result.Hidden {
		resp.Hidden[i] = rec.Index
	}

	h.jsonResponse(w, resp, http.StatusOK)
}

// GetDestination handles GET /api/destinations/{index}
func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.jsonError(w, "invalid destination index", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(index)
	if errors.Is(err, ErrDestinationNotFound) {
		h.jsonError(w, "destination not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get destination", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, h.destinationToJSON(d, h.svc.Records()[index]), http.StatusOK)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Categories(), http.StatusOK)
}

// ParseSchedule handles GET /api/schedule
func (h *Handler) ParseSchedule(w http.ResponseWriter, r *http.Request) {
	s := cards.ParseSchedule(r.URL.Query().Get("value"))
	h.jsonResponse(w, scheduleJSON{Raw: s.Raw, Minutes: s.Minutes, Known: s.Known}, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) parseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// browseQuery reads filter, q, sort and visible. A missing visible count
// selects the first page, so every control change except load-more
// resets the reveal.
func (h *Handler) browseQuery(r *http.Request) BrowseQuery {
	q := r.URL.Query()
	return BrowseQuery{
		Filter:  q.Get("filter"),
		Query:   q.Get("q"),
		Sort:    q.Get("sort"),
		Visible: h.parseInt(q.Get("visible"), 0),
	}
}

func (h *Handler) destinationToJSON(d *Destination, rec cards.Record) destinationJSON {
	out := destinationJSON{
		Destination:     d,
		DescriptionHTML: h.svc.DescriptionHTML(rec.Index),
	}
	if local, ok := h.svc.LocalTime(rec.Index, h.clock.Now()); ok {
		out.LocalTime = local
	}
	if rec.Schedule.Known {
		minutes := rec.Schedule.Minutes
		out.ScheduleMinutes = &minutes
	}
	return out
}

// --- View model converters ---

func (h *Handler) destinationsToViews(result *BrowseResult) []models.DestinationView {
	now := h.clock.Now()
	views := make([]models.DestinationView, len(result.Destinations))
	for i, d := range result.Destinations {
		rec := result.Shown[i]
		local, _ := h.svc.LocalTime(rec.Index, now)
		views[i] = models.DestinationView{
			Index:           rec.Index,
			Title:           d.Title,
			Category:        rec.Category,
			CategoryLabel:   cards.CategoryLabel(rec.Category),
			DescriptionHTML: h.svc.DescriptionHTML(rec.Index),
			Schedule:        d.Schedule,
			ScheduleKnown:   rec.Schedule.Known,
			LocalTime:       local,
			TimeZone:        d.TimeZone,
			Image:           d.Image,
			Link:            d.Link,
		}
	}
	return views
}

func (h *Handler) gridView(result *BrowseResult) models.GridView {
	return models.GridView{
		Destinations:  h.destinationsToViews(result),
		Empty:         result.Empty,
		MoreAvailable: result.MoreAvailable,
		NextVisible:   result.NextVisible,
		Matched:       result.Matched,
		Total:         result.Total,
	}
}

func buttonsToViews(buttons []cards.Button) []models.CategoryButtonView {
	views := make([]models.CategoryButtonView, len(buttons))
	for i, b := range buttons {
		views[i] = models.CategoryButtonView{Key: b.Key, Label: b.Label, Pressed: b.Pressed}
	}
	return views
}

func sortOptionViews(active cards.SortMode) []models.SortOptionView {
	views := make([]models.SortOptionView, len(cards.SortModes))
	for i, mode := range cards.SortModes {
		views[i] = models.SortOptionView{Key: string(mode), Label: mode.Label(), Selected: mode == active}
	}
	return views
}

// --- HTMX Web Handlers ---

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Browse(r.Context(), h.browseQuery(r))

	page := models.PageView{
		Title: pageTitle,
		Controls: models.ControlsView{
			Filter:        result.State.ActiveFilter,
			Query:         r.URL.Query().Get("q"),
			Categories:    buttonsToViews(result.Buttons),
			SortOptions:   sortOptionViews(result.State.SortMode),
			SearchDelayMS: h.svc.Debounce().Milliseconds(),
		},
		Grid: h.gridView(result),
	}

	if err := pages.HomePage(page).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render home page", "error", err)
	}
}

// DestinationsFragment handles GET /fragments/destinations (HTMX partial)
func (h *Handler) DestinationsFragment(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Browse(r.Context(), h.browseQuery(r))

	component := components.DestinationsFragment(
		result.State.ActiveFilter,
		buttonsToViews(result.Buttons),
		h.gridView(result),
	)
	if err := component.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render destinations fragment", "error", err)
	}
}
