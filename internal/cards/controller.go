package cards

import (
	"sync"
	"time"

	"golang.org/x/text/language"

	"travelshowcase/internal/clock"
	"travelshowcase/internal/debounce"
)

// Pass is what a render surface receives after every recompute.
type Pass struct {
	Result

	// Buttons holds the category controls, in display order, with the
	// active filter pressed.
	Buttons []Button

	// Seq increases by one with every pass a controller produces.
	Seq uint64
}

// RenderSurface presents passes. Render is called while the controller
// holds its lock, so it must not block or call back into the controller.
type RenderSurface interface {
	Render(Pass)
}

// RenderFunc adapts a function to RenderSurface.
type RenderFunc func(Pass)

func (f RenderFunc) Render(p Pass) { f(p) }

// Option configures a Controller.
type Option func(*Controller)

// WithPaging sets the initial page size and load-more step.
func WithPaging(p Paging) Option {
	return func(c *Controller) {
		c.paging = p.normalized()
	}
}

// WithDebounce sets the quiet window for search input.
func WithDebounce(wait time.Duration) Option {
	return func(c *Controller) {
		c.debounceWait = wait
	}
}

// WithClock sets the clock used for the search debounce.
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithLocale sets the collation locale for name sorting.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) {
		c.locale = tag
	}
}

// Controller owns one session's view state over a fixed record set and
// recomputes the card list on every input. All methods are safe for
// concurrent use; each recompute is rendered before the next input is
// applied.
type Controller struct {
	records []Record
	keys    []string
	surface RenderSurface

	paging       Paging
	locale       language.Tag
	debounceWait time.Duration
	clock        clock.Clock
	search       *debounce.Debouncer

	mu    sync.Mutex
	state ViewState
	last  Pass
	seq   uint64
}

// NewController creates a controller in the default view state. surface
// may be nil when the caller only reads Snapshot. Nothing is rendered
// until the first input or Refresh.
func NewController(records []Record, surface RenderSurface, opts ...Option) *Controller {
	c := &Controller{
		records:      records,
		keys:         ButtonKeys(records),
		surface:      surface,
		paging:       DefaultPaging(),
		locale:       language.English,
		debounceWait: debounce.DefaultWait,
		clock:        clock.Real(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.search = debounce.New(c.debounceWait, debounce.WithClock(c.clock))
	c.state = DefaultViewState(c.paging)
	c.last = c.compute()
	return c
}

// SetFilter selects a category, or every category for "all" or an empty
// key. A key no card uses yields an empty list.
func (c *Controller) SetFilter(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.ActiveFilter = category
	c.resetLocked()
}

// SetSearchQuery schedules text as the new search query. Calls arriving
// within the debounce window replace each other; only the last one is
// applied, once input has been quiet for the full window.
func (c *Controller) SetSearchQuery(text string) {
	c.search.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.state.SearchQuery = text
		c.resetLocked()
	})
}

// FlushSearch applies a pending search query immediately and reports
// whether there was one.
func (c *Controller) FlushSearch() bool {
	return c.search.Flush()
}

// SetSortMode changes the order. Unknown modes sort by relevance.
func (c *Controller) SetSortMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SortMode = SortMode(mode)
	c.resetLocked()
}

// LoadMore reveals another page of the current list.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.VisibleCount += c.paging.Step
	c.renderLocked()
}

// Refresh renders the current state without changing it.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderLocked()
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the most recent pass.
func (c *Controller) Snapshot() Pass {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Paging returns the page size and step in use.
func (c *Controller) Paging() Paging {
	return c.paging
}

// Categories returns the category control keys, starting with "all".
func (c *Controller) Categories() []string {
	return c.keys
}

// Close drops any pending search input.
func (c *Controller) Close() {
	c.search.Cancel()
}

// resetLocked restarts paging after a filter, search or sort change.
func (c *Controller) resetLocked() {
	c.state.VisibleCount = c.paging.Size
	c.renderLocked()
}

func (c *Controller) renderLocked() {
	c.last = c.compute()
	if c.surface != nil {
		c.surface.Render(c.last)
	}
}

func (c *Controller) compute() Pass {
	result := Compute(c.records, c.state, c.locale)
	c.state = result.State
	c.seq++
	return Pass{
		Result:  result,
		Buttons: CategoryButtons(c.keys, c.state.ActiveFilter),
		Seq:     c.seq,
	}
}
