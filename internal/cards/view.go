package cards

// SortMode orders the filtered cards.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
	SortTimeAsc   SortMode = "time-asc"
	SortTimeDesc  SortMode = "time-desc"
)

// SortModes lists every mode in the order surfaces present them.
var SortModes = []SortMode{SortRelevance, SortNameAsc, SortNameDesc, SortTimeAsc, SortTimeDesc}

// ParseSortMode maps a mode key to a SortMode. Keys match exactly; any
// other key falls back to relevance.
func ParseSortMode(key string) SortMode {
	mode := SortMode(key)
	for _, m := range SortModes {
		if m == mode {
			return m
		}
	}
	return SortRelevance
}

// Label is the human readable name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortTimeAsc:
		return "Time (shortest)"
	case SortTimeDesc:
		return "Time (longest)"
	default:
		return "Relevance"
	}
}

const (
	DefaultPageSize = 6
	DefaultPageStep = 3
)

// Paging sets how many cards are revealed initially and per load-more.
type Paging struct {
	Size int
	Step int
}

// DefaultPaging returns the standard six-then-three reveal.
func DefaultPaging() Paging {
	return Paging{Size: DefaultPageSize, Step: DefaultPageStep}
}

func (p Paging) normalized() Paging {
	if p.Size < 0 {
		p.Size = 0
	}
	if p.Step <= 0 {
		p.Step = DefaultPageStep
	}
	return p
}

// ViewState is everything a surface can change about the card list.
type ViewState struct {
	ActiveFilter string
	SearchQuery  string
	SortMode     SortMode
	VisibleCount int
}

// DefaultViewState shows every category in relevance order with the
// first page revealed.
func DefaultViewState(paging Paging) ViewState {
	return ViewState{
		ActiveFilter: FilterAll,
		SortMode:     SortRelevance,
		VisibleCount: paging.normalized().Size,
	}
}

// Normalized returns the state with every field in canonical form, so
// that request parameters can be used as a ViewState directly.
func (s ViewState) Normalized() ViewState {
	s.ActiveFilter = NormalizeCategory(s.ActiveFilter)
	if s.ActiveFilter == "" {
		s.ActiveFilter = FilterAll
	}
	s.SearchQuery = NormalizeQuery(s.SearchQuery)
	s.SortMode = ParseSortMode(string(s.SortMode))
	if s.VisibleCount < 0 {
		s.VisibleCount = 0
	}
	return s
}
