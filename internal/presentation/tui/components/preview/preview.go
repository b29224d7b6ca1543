// Package preview provides the typeset formula panel.
package preview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the preview component.
type Props struct {
	Rendered string
	Source   string
	Backend  string
	Width    int
	Accent   string
	Border   string
	Muted    string
}

// Render renders the preview panel: the typeset text and, below it, the
// delimited source it came from.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(p.Width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	title := "Preview"
	if p.Backend != "" {
		title += " · " + p.Backend
	}
	body := p.Rendered
	if body == "" {
		body = mutedStyle.Render("(empty)")
	}
	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		body,
		"",
		mutedStyle.Render(p.Source),
	))
}
