// Package editor provides the formula input panel.
package editor

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the editor component.
type Props struct {
	View   string
	Width  int
	Active bool
	Accent string
	Border string
}

// Render renders the editor panel around the textarea view.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(p.Width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1)
	if p.Active {
		style = style.BorderForeground(lipgloss.Color(p.Accent))
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("LaTeX"), p.View))
}
