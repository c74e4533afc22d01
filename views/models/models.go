package models

// DestinationView represents a destination card for template rendering
type DestinationView struct {
	Index           int
	Title           string
	Category        string
	CategoryLabel   string
	DescriptionHTML string
	Schedule        string
	ScheduleKnown   bool
	LocalTime       string
	TimeZone        string
	Image           string
	Link            string
}

// CategoryButtonView is one category control
type CategoryButtonView struct {
	Key     string
	Label   string
	Pressed bool
}

// SortOptionView is one entry of the sort select
type SortOptionView struct {
	Key      string
	Label    string
	Selected bool
}

// GridView is the card grid with its empty state and load-more control
type GridView struct {
	Destinations  []DestinationView
	Empty         bool
	MoreAvailable bool
	NextVisible   int
	Matched       int
	Total         int
}

// ControlsView holds the current filter inputs
type ControlsView struct {
	Filter      string
	Query       string
	Categories  []CategoryButtonView
	SortOptions []SortOptionView

	// SearchDelayMS is the quiet window applied to search keystrokes.
	SearchDelayMS int64
}

// PageView is the full showcase page
type PageView struct {
	Title    string
	Controls ControlsView
	Grid     GridView
}
