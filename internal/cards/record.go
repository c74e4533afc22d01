// Package cards holds the destination card list logic: the immutable card
// records, the view state, and the controller that turns filter, search,
// sort and load-more input into an ordered set of shown and hidden cards.
package cards

import "strings"

// FilterAll is the wildcard category filter. No card may use it as its
// own category.
const FilterAll = "all"

// RawCard is one entry as delivered by a card source. Every field may be
// empty.
type RawCard struct {
	Title       string
	Category    string
	Description string
	Schedule    string
}

// Record is a card prepared for filtering and sorting. Records are built
// once by NewRecords and never modified afterwards.
type Record struct {
	// Index is the card's position in the source and doubles as its
	// relevance rank.
	Index       int
	Title       string
	Category    string
	Description string
	Schedule    Schedule

	// haystack is the lower-cased text matched by search queries.
	haystack string
}

// NewRecords derives records from raw cards, preserving source order.
func NewRecords(raw []RawCard) []Record {
	records := make([]Record, len(raw))
	for i, card := range raw {
		records[i] = Record{
			Index:       i,
			Title:       card.Title,
			Category:    NormalizeCategory(card.Category),
			Description: card.Description,
			Schedule:    ParseSchedule(card.Schedule),
			haystack:    strings.ToLower(card.Title + " " + card.Description),
		}
	}
	return records
}

// NormalizeCategory trims and lower-cases a category key.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizeQuery trims and lower-cases a search query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Categories returns the distinct categories of records in source order,
// skipping empty ones and the reserved wildcard.
func Categories(records []Record) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, record := range records {
		if record.Category == "" || record.Category == FilterAll || seen[record.Category] {
			continue
		}
		seen[record.Category] = true
		categories = append(categories, record.Category)
	}
	return categories
}

// Matches reports whether the record passes the category filter and the
// search query. Both arguments must already be normalised.
func (r Record) Matches(filter, query string) bool {
	if filter != FilterAll && r.Category != filter {
		return false
	}
	return query == "" || strings.Contains(r.haystack, query)
}
