// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Tabs    string
	Palette string
	Side    string
	Footer  string
}

// Render stacks the tab bar, the palette beside the editor and preview
// column, and the footer.
func Render(p Props) string {
	content := lipgloss.JoinHorizontal(lipgloss.Top, p.Palette, p.Side)
	return lipgloss.JoinVertical(lipgloss.Left, p.Tabs, content, p.Footer)
}
