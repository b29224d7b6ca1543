// Package palette provides the symbol button grid.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/latexpad/internal/presentation/tui/metrics"
	"github.com/tesso57/latexpad/internal/presentation/tui/textutil"
)

// Props defines the properties for the palette component.
type Props struct {
	Title   string
	Labels  []string
	Cursor  int
	Columns int
	Width   int
	Height  int
	Active  bool
	Snippet string
	Accent  string
	Border  string
	Muted   string
}

// Render renders the visible group as a grid. Rows that do not fit the
// height scroll so the cursor row stays visible.
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
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	columns := p.Columns
	if columns < 1 {
		columns = 1
	}
	cell := metrics.CellWidth - 2

	var rows []string
	for start := 0; start < len(p.Labels); start += columns {
		end := min(start+columns, len(p.Labels))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			text := " " + textutil.Pad(textutil.SingleLine(p.Labels[i]), cell) + " "
			if i == p.Cursor && p.Active {
				text = cursorStyle.Render(text)
			}
			cells = append(cells, text)
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	rows = window(rows, p.Cursor/columns, p.Height)

	lines := []string{titleStyle.Render(p.Title)}
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("(no symbols)"))
	}
	lines = append(lines, rows...)
	if p.Snippet != "" {
		lines = append(lines, mutedStyle.Render(textutil.Truncate(textutil.SingleLine(p.Snippet), p.Width-metrics.PaddingWidth)))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// window returns at most height rows around row focus.
func window(rows []string, focus, height int) []string {
	if height <= 0 || len(rows) <= height {
		return rows
	}
	start := focus - height/2
	start = max(0, min(start, len(rows)-height))
	return rows[start : start+height]
}
