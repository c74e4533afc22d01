package explorer

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the explorer view.
type Styles struct {
	Title          lipgloss.Style
	Category       lipgloss.Style
	CategoryActive lipgloss.Style
	Sort           lipgloss.Style
	CardTitle      lipgloss.Style
	CardMeta       lipgloss.Style
	Empty          lipgloss.Style
	Status         lipgloss.Style
}

// DefaultStyles is the built-in dark-terminal palette.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#7dd3fc")
	muted := lipgloss.Color("#8a8f98")

	return Styles{
		Title:          lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Category:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		CategoryActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#0b1120")).Background(accent),
		Sort:           lipgloss.NewStyle().Italic(true).Foreground(muted),
		CardTitle:      lipgloss.NewStyle().Bold(true),
		CardMeta:       lipgloss.NewStyle().Foreground(muted),
		Empty:          lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#f59e0b")),
		Status:         lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
