package components

import (
	"fmt"

	"github.com/a-h/templ"
)

// Element ids shared by the page and the fragments that replace parts of it.
const (
	GridID        = "destination-grid"
	CategoryBarID = "category-bar"
	ControlsID    = "controls"
	FragmentPath  = "/fragments/destinations"
)

func visibleVals(visible int) string {
	return jsonVals(map[string]any{"visible": visible})
}

func filterVals(key string) string {
	return jsonVals(map[string]any{"filter": key})
}

func jsonVals(v map[string]any) string {
	s, err := templ.JSONString(v)
	if err != nil {
		return "{}"
	}
	return s
}

// searchTrigger waits for delayMS of quiet typing before the search
// input requests a fragment.
func searchTrigger(delayMS int64) string {
	return fmt.Sprintf("input changed delay:%dms, search", delayMS)
}
