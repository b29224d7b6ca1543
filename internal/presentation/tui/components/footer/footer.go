// Package footer provides the status and help line.
package footer

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the footer component.
type Props struct {
	Text  string
	Width int
	Muted string
}

// Render renders the footer. Lines wider than Width are cut.
func Render(p Props) string {
	if p.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	if p.Width > 0 {
		style = style.MaxWidth(p.Width)
	}
	return style.Render(p.Text)
}
