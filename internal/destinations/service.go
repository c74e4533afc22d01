package destinations

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"travelshowcase/internal/cards"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrNotLoaded           = errors.New("destinations not loaded")
)

// Service holds the destination snapshot taken at startup and computes
// card views over it.
type Service struct {
	store  Store
	log    *slog.Logger
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tracer trace.Tracer

	paging   cards.Paging
	locale   language.Tag
	debounce time.Duration

	mu           sync.RWMutex
	destinations []*Destination
	records      []cards.Record
	rendered     []string
	zones        []*time.Location
}

// Option configures a Service.
type Option func(*Service)

func WithPaging(p cards.Paging) Option {
	return func(s *Service) { s.paging = p }
}

func WithLocale(tag language.Tag) Option {
	return func(s *Service) { s.locale = tag }
}

// WithDebounce sets the search quiet window for controllers created by
// NewController.
func WithDebounce(d time.Duration) Option {
	return func(s *Service) { s.debounce = d }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		log:      slog.Default(),
		md:       goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
		tracer:   otel.Tracer("travelshowcase/destinations"),
		paging:   cards.DefaultPaging(),
		locale:   language.English,
		debounce: 220 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the store once and prepares the records, rendered
// descriptions and time zones. Later store changes are not seen until
// the next Load.
func (s *Service) Load(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "destinations.Load")
	defer span.End()

	list, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load destinations: %w", err)
	}

	// Stores other than the catalog file skip its validation. Unknown zones
	// are tolerated below.
	for i, d := range list {
		if err := checkDestination(i, d, "TimeZone"); err != nil {
			return fmt.Errorf("load destinations: %w", err)
		}
	}

	raw := make([]cards.RawCard, len(list))
	rendered := make([]string, len(list))
	zones := make([]*time.Location, len(list))
	for i, d := range list {
		raw[i] = d.Raw()
		rendered[i] = s.RenderDescription(d.Description)
		if d.TimeZone == "" {
			continue
		}
		loc, err := time.LoadLocation(d.TimeZone)
		if err != nil {
			s.log.Warn("ignoring unknown time zone", "destination", d.Title, "time_zone", d.TimeZone, "error", err)
			continue
		}
		zones[i] = loc
	}

	s.mu.Lock()
	s.destinations = list
	s.records = cards.NewRecords(raw)
	s.rendered = rendered
	s.zones = zones
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("destinations.count", len(list)))
	s.log.Info("destinations loaded", "count", len(list))
	return nil
}

// Records returns the loaded card records.
func (s *Service) Records() []cards.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Paging returns the configured page size and step.
func (s *Service) Paging() cards.Paging {
	return s.paging
}

// Debounce returns the search quiet window.
func (s *Service) Debounce() time.Duration {
	return s.debounce
}

// Browse computes one view for a request/response surface.
func (s *Service) Browse(ctx context.Context, q BrowseQuery) *BrowseResult {
	_, span := s.tracer.Start(ctx, "destinations.Browse")
	defer span.End()

	visible := q.Visible
	if visible <= 0 {
		visible = s.paging.Size
	}
	state := cards.ViewState{
		ActiveFilter: q.Filter,
		SearchQuery:  q.Query,
		SortMode:     cards.SortMode(q.Sort),
		VisibleCount: visible,
	}

	s.mu.RLock()
	records := s.records
	destinations := s.destinations
	s.mu.RUnlock()

	result := cards.Compute(records, state, s.locale)
	shown := make([]*Destination, len(result.Shown))
	for i, r := range result.Shown {
		shown[i] = destinations[r.Index]
	}

	span.SetAttributes(
		attribute.String("browse.filter", result.State.ActiveFilter),
		attribute.String("browse.sort", string(result.State.SortMode)),
		attribute.Int("browse.visible", result.State.VisibleCount),
		attribute.Int("browse.matched", result.Matched),
	)

	return &BrowseResult{
		Result:       result,
		Buttons:      cards.CategoryButtons(cards.ButtonKeys(records), result.State.ActiveFilter),
		Destinations: shown,
		NextVisible:  result.State.VisibleCount + s.paging.Step,
	}
}

// NewController starts a stateful session over the loaded records for
// surfaces that deliver input events one at a time.
func (s *Service) NewController(surface cards.RenderSurface, opts ...cards.Option) *cards.Controller {
	base := []cards.Option{
		cards.WithPaging(s.paging),
		cards.WithLocale(s.locale),
		cards.WithDebounce(s.debounce),
	}
	return cards.NewController(s.Records(), surface, append(base, opts...)...)
}

// Categories returns every category with its destination count, in order
// of first appearance.
func (s *Service) Categories() []*Category {
	records := s.Records()

	counts := make(map[string]int64)
	for _, r := range records {
		counts[r.Category]++
	}
	names := cards.Categories(records)
	categories := make([]*Category, len(names))
	for i, name := range names {
		categories[i] = &Category{Name: name, Label: cards.CategoryLabel(name), Count: counts[name]}
	}
	return categories
}

// Get returns the destination at a record index.
func (s *Service) Get(index int) (*Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destinations == nil {
		return nil, ErrNotLoaded
	}
	if index < 0 || index >= len(s.destinations) {
		return nil, ErrDestinationNotFound
	}
	return s.destinations[index], nil
}

// DescriptionHTML returns the sanitised HTML description for a record
// index.
func (s *Service) DescriptionHTML(index int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.rendered) {
		return ""
	}
	return s.rendered[index]
}

// RenderDescription converts markdown to sanitised HTML.
func (s *Service) RenderDescription(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return s.policy.Sanitize(content)
	}
	return s.policy.Sanitize(buf.String())
}

// LocalTime formats now in the destination's time zone. ok is false when
// the destination has no usable zone.
func (s *Service) LocalTime(index int, now time.Time) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.zones) || s.zones[index] == nil {
		return "", false
	}
	return now.In(s.zones[index]).Format("15:04"), true
}
