package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the terminal renderer.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Bar    lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true),
	}
}
