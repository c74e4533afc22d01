package cards

import "strings"

// Button is the state of one category control.
type Button struct {
	Key   string
	Label string

	// Active selects the highlighted style.
	Active bool

	// Pressed mirrors Active for aria-pressed.
	Pressed bool
}

// CategoryButtons returns one button per key with exactly the button
// matching active marked active and pressed. When no key matches, no
// button is pressed.
func CategoryButtons(keys []string, active string) []Button {
	active = NormalizeCategory(active)
	buttons := make([]Button, len(keys))
	for i, key := range keys {
		on := key == active
		buttons[i] = Button{
			Key:     key,
			Label:   CategoryLabel(key),
			Active:  on,
			Pressed: on,
		}
	}
	return buttons
}

// ButtonKeys returns the category control keys for records: the wildcard
// first, then each category in source order.
func ButtonKeys(records []Record) []string {
	return append([]string{FilterAll}, Categories(records)...)
}

// CategoryLabel is the display name of a category key.
func CategoryLabel(key string) string {
	if key == FilterAll {
		return "All"
	}
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
