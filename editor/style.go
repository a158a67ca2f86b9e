package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	On     lipgloss.Style
	Off    lipgloss.Style
	Cursor lipgloss.Style

	Ruler  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyle() Style {
	ruler := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		On:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Off:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Ruler:  ruler,
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
