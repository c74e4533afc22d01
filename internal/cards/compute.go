package cards

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Result is one recompute pass over the full record set.
type Result struct {
	// State is the normalised view state the pass was computed from.
	State ViewState

	// Shown holds the revealed records in display order.
	Shown []Record

	// Hidden holds every other record, in source order. Together with
	// Shown it covers the full set exactly once.
	Hidden []Record

	// Matched is the number of records that passed the filter and
	// search, whether revealed or not.
	Matched int
	Total   int

	// Empty drives the "no destinations match" indicator.
	Empty bool

	// MoreAvailable drives the load-more control.
	MoreAvailable bool
}

// Compute filters, sorts and paginates records for state. Titles are
// ordered with the collation rules of locale.
func Compute(records []Record, state ViewState, locale language.Tag) Result {
	state = state.Normalized()

	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if record.Matches(state.ActiveFilter, state.SearchQuery) {
			matched = append(matched, record)
		}
	}

	sortRecords(matched, state.SortMode, locale)

	visible := min(state.VisibleCount, len(matched))
	shown := matched[:visible:visible]

	revealed := make(map[int]bool, visible)
	for _, record := range shown {
		revealed[record.Index] = true
	}
	hidden := make([]Record, 0, len(records)-visible)
	for _, record := range records {
		if !revealed[record.Index] {
			hidden = append(hidden, record)
		}
	}

	return Result{
		State:         state,
		Shown:         shown,
		Hidden:        hidden,
		Matched:       len(matched),
		Total:         len(records),
		Empty:         len(matched) == 0,
		MoreAvailable: len(matched) > state.VisibleCount,
	}
}

// sortRecords orders records in place. Every comparison is stable, so
// equal keys keep source order.
func sortRecords(records []Record, mode SortMode, locale language.Tag) {
	switch mode {
	case SortNameAsc, SortNameDesc:
		// A Collator keeps internal buffers and is not safe to share.
		collator := collate.New(locale)
		sign := 1
		if mode == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(records, func(a, b Record) int {
			return sign * collator.CompareString(a.Title, b.Title)
		})
	case SortTimeAsc:
		slices.SortStableFunc(records, func(a, b Record) int {
			return cmp.Compare(minutesOr(a, math.MaxInt), minutesOr(b, math.MaxInt))
		})
	case SortTimeDesc:
		// Unknown counts as negative infinity here, which still places it
		// last once the order is descending.
		slices.SortStableFunc(records, func(a, b Record) int {
			return cmp.Compare(minutesOr(b, math.MinInt), minutesOr(a, math.MinInt))
		})
	default:
		slices.SortStableFunc(records, func(a, b Record) int {
			return cmp.Compare(a.Index, b.Index)
		})
	}
}

func minutesOr(r Record, unknown int) int {
	if !r.Schedule.Known {
		return unknown
	}
	return r.Schedule.Minutes
}
