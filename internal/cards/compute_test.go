package cards

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func sampleRecords() []Record {
	return NewRecords([]RawCard{
		{Title: "Bali, Indonesia", Category: "Beach", Description: "Beautiful beaches and vibrant culture.", Schedule: "2h 30m"},
		{Title: "Maldives", Category: "beach", Description: "Tropical paradise with crystal-clear waters.", Schedule: "45m"},
		{Title: "Angkor Wat, Cambodia", Category: "temple", Description: "Ancient temple complex with rich history.", Schedule: "14:30"},
		{Title: "Shwedagon Pagoda, Myanmar", Category: "temple", Description: "Golden pagoda and spiritual landmark."},
		{Title: "Helsinki, Finland", Category: "city", Description: "Urban attractions and iconic landmarks.", Schedule: "90"},
		{Title: "Paris, France", Category: "city", Description: "Romantic city with historical landmarks.", Schedule: "soon"},
		{Title: "Bora Bora", Category: "beach", Description: "Overwater bungalows in a turquoise lagoon.", Schedule: "3h"},
		{Title: "Golden Temple, India", Category: "temple", Description: "Sacred Sikh gurdwara in Amritsar.", Schedule: "1h"},
		{Title: "Toronto, Canada", Category: "city", Description: "Lakeside skyline and a vibrant food scene.", Schedule: "20m"},
		{Title: "Éze, France", Category: "beach", Description: "Hilltop village above the Riviera.", Schedule: "1h 10m"},
	})
}

func stateFor(filter, query string, mode SortMode, visible int) ViewState {
	return ViewState{ActiveFilter: filter, SearchQuery: query, SortMode: mode, VisibleCount: visible}
}

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func indexes(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Index
	}
	return out
}

func TestComputePartitionsEveryRecordExactlyOnce(t *testing.T) {
	records := sampleRecords()
	filters := []string{"all", "beach", "temple", "city", "mountain", ""}
	queries := []string{"", "paris", "landmark", "zzz", "A"}
	for _, filter := range filters {
		for _, query := range queries {
			for _, mode := range append(SortModes, "bogus") {
				for _, visible := range []int{0, 1, 6, 100} {
					name := fmt.Sprintf("%s/%s/%s/%d", filter, query, mode, visible)
					result := Compute(records, stateFor(filter, query, mode, visible), language.English)

					seen := make(map[int]int)
					for _, r := range result.Shown {
						seen[r.Index]++
					}
					for _, r := range result.Hidden {
						seen[r.Index]++
					}
					require.Len(t, seen, len(records), name)
					for index, count := range seen {
						require.Equal(t, 1, count, "%s: record %d classified %d times", name, index, count)
					}
				}
			}
		}
	}
}

func TestComputeRelevanceIsIndexOrder(t *testing.T) {
	result := Compute(sampleRecords(), stateFor("all", "", SortRelevance, 100), language.English)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes(result.Shown))
}

func TestComputeNameSortsAreReverses(t *testing.T) {
	records := sampleRecords()
	for _, filter := range []string{"all", "beach", "city"} {
		asc := Compute(records, stateFor(filter, "", SortNameAsc, 100), language.English)
		desc := Compute(records, stateFor(filter, "", SortNameDesc, 100), language.English)

		reversed := titles(desc.Shown)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, titles(asc.Shown), reversed, filter)
	}
}

func TestComputeNameSortIsLocaleAware(t *testing.T) {
	result := Compute(sampleRecords(), stateFor("beach", "", SortNameAsc, 100), language.English)

	// Byte order would put "Éze" after "Maldives".
	assert.Equal(t, []string{"Bali, Indonesia", "Bora Bora", "Éze, France", "Maldives"}, titles(result.Shown))
}

func TestComputeFilteringIsIdempotent(t *testing.T) {
	records := sampleRecords()
	for _, tt := range []struct{ filter, query string }{
		{"all", ""}, {"beach", ""}, {"all", "landmark"}, {"city", "france"}, {"temple", "zzz"},
	} {
		once := Compute(records, stateFor(tt.filter, tt.query, SortRelevance, 100), language.English)
		twice := Compute(once.Shown, stateFor(tt.filter, tt.query, SortRelevance, 100), language.English)
		assert.Equal(t, indexes(once.Shown), indexes(twice.Shown), "%s/%s", tt.filter, tt.query)
	}
}

func TestComputeTimeSortsPutUnknownLast(t *testing.T) {
	records := NewRecords([]RawCard{
		{Title: "two hours", Schedule: "120"},
		{Title: "unknown", Schedule: ""},
		{Title: "half hour", Schedule: "30"},
	})

	asc := Compute(records, stateFor("all", "", SortTimeAsc, 10), language.English)
	assert.Equal(t, []string{"half hour", "two hours", "unknown"}, titles(asc.Shown))

	desc := Compute(records, stateFor("all", "", SortTimeDesc, 10), language.English)
	assert.Equal(t, []string{"two hours", "half hour", "unknown"}, titles(desc.Shown))
}

func TestComputeTimeSortTreatsHugeHoursAsUnknown(t *testing.T) {
	records := NewRecords([]RawCard{
		{Title: "ten minutes", Schedule: "10m"},
		{Title: "forever", Schedule: "999999999999999999h"},
		{Title: "two hours", Schedule: "2h"},
	})

	asc := Compute(records, stateFor("all", "", SortTimeAsc, 10), language.English)
	assert.Equal(t, []string{"ten minutes", "two hours", "forever"}, titles(asc.Shown))
}

func TestComputeTimeSortKeepsSourceOrderForUnknowns(t *testing.T) {
	result := Compute(sampleRecords(), stateFor("all", "", SortTimeDesc, 100), language.English)

	shown := titles(result.Shown)
	assert.Equal(t, []string{"Shwedagon Pagoda, Myanmar", "Paris, France"}, shown[len(shown)-2:])
	assert.Equal(t, "Angkor Wat, Cambodia", shown[0])
}

func TestComputeBeachScenario(t *testing.T) {
	result := Compute(sampleRecords(), stateFor("beach", "", SortRelevance, DefaultPageSize), language.English)

	assert.Len(t, result.Shown, 4)
	assert.Len(t, result.Hidden, 6)
	assert.False(t, result.MoreAvailable)
	assert.False(t, result.Empty)
	assert.Equal(t, 4, result.Matched)
}

func TestComputeSearchMatchesTitleAndDescription(t *testing.T) {
	records := sampleRecords()

	result := Compute(records, stateFor("all", "  PARIS ", SortRelevance, 6), language.English)
	assert.Equal(t, []string{"Paris, France"}, titles(result.Shown))
	assert.NotContains(t, titles(result.Shown), "Helsinki, Finland")

	result = Compute(records, stateFor("all", "crystal-clear", SortRelevance, 6), language.English)
	assert.Equal(t, []string{"Maldives"}, titles(result.Shown), "description text is searchable")
}

func TestComputeUnknownFilterAndSort(t *testing.T) {
	records := sampleRecords()

	result := Compute(records, stateFor("mountain", "", SortRelevance, 6), language.English)
	assert.True(t, result.Empty)
	assert.Empty(t, result.Shown)
	assert.Len(t, result.Hidden, len(records))
	assert.False(t, result.MoreAvailable)

	result = Compute(records, stateFor("all", "", "by-price", 100), language.English)
	assert.Equal(t, SortRelevance, result.State.SortMode)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes(result.Shown))
}

func TestComputePagination(t *testing.T) {
	records := sampleRecords()

	result := Compute(records, stateFor("all", "", SortRelevance, 6), language.English)
	assert.Len(t, result.Shown, 6)
	assert.True(t, result.MoreAvailable)

	result = Compute(records, stateFor("all", "", SortRelevance, 10), language.English)
	assert.Len(t, result.Shown, 10)
	assert.False(t, result.MoreAvailable, "more is only offered when matches exceed the visible count")

	result = Compute(records, stateFor("all", "", SortRelevance, -3), language.English)
	assert.Empty(t, result.Shown)
	assert.Equal(t, 0, result.State.VisibleCount)
}

func TestCategoriesSkipReservedAndDuplicates(t *testing.T) {
	records := NewRecords([]RawCard{
		{Title: "a", Category: "Beach"},
		{Title: "b", Category: "all"},
		{Title: "c", Category: ""},
		{Title: "d", Category: "temple"},
		{Title: "e", Category: "beach"},
	})

	assert.Equal(t, []string{"beach", "temple"}, Categories(records))
	assert.Equal(t, []string{"all", "beach", "temple"}, ButtonKeys(records))
}

func TestCategoryButtonsPressExactlyActive(t *testing.T) {
	keys := []string{"all", "beach", "temple", "city"}

	for _, active := range keys {
		pressed := 0
		for _, b := range CategoryButtons(keys, active) {
			assert.Equal(t, b.Key == active, b.Pressed, "%s/%s", active, b.Key)
			assert.Equal(t, b.Pressed, b.Active)
			if b.Pressed {
				pressed++
			}
		}
		assert.Equal(t, 1, pressed, active)
	}

	for _, b := range CategoryButtons(keys, "mountain") {
		assert.False(t, b.Pressed, "unknown filter presses nothing")
	}

	assert.Equal(t, "All", CategoryButtons(keys, "all")[0].Label)
	assert.Equal(t, "Beach", CategoryButtons(keys, "all")[1].Label)
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortNameDesc, ParseSortMode("name-desc"))
	assert.Equal(t, SortTimeAsc, ParseSortMode("time-asc"))
	assert.Equal(t, SortRelevance, ParseSortMode(" Name-Desc "))
	assert.Equal(t, SortRelevance, ParseSortMode("NAME-ASC"))
	assert.Equal(t, SortRelevance, ParseSortMode(""))
	assert.Equal(t, SortRelevance, ParseSortMode("price"))
}
