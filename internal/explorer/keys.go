package explorer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Sort         key.Binding
	LoadMore     key.Binding
	Quit         key.Binding

	// Active while the search input has focus.
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next category"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous category"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	LoadMore: key.NewBinding(
		key.WithKeys("m", "enter"),
		key.WithHelp("m", "load more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.Sort, k.LoadMore, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Submit, k.Cancel},
		{k.NextCategory, k.PrevCategory},
		{k.Sort, k.LoadMore, k.Quit},
	}
}
