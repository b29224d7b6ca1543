// Package selector provides the category tab bar.
package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/latexpad/internal/presentation/tui/textutil"
)

// Props defines the properties for the selector component.
type Props struct {
	Labels   []string
	Selected int
	Width    int
	Accent   string
	Muted    string
}

// Render renders the tab bar. When the labels do not fit, only the selected
// one is shown with its position.
func Render(p Props) string {
	if len(p.Labels) == 0 {
		return ""
	}
	active := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(p.Accent))
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	tabs := make([]string, len(p.Labels))
	for i, label := range p.Labels {
		if i == p.Selected {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	line := strings.Join(tabs, inactive.Render(" │ "))
	if p.Width <= 0 || ansi.StringWidth(line) <= p.Width {
		return line
	}

	selected := ""
	if p.Selected >= 0 && p.Selected < len(p.Labels) {
		selected = p.Labels[p.Selected]
	}
	compact := fmt.Sprintf("‹ %s (%d/%d) ›", selected, p.Selected+1, len(p.Labels))
	return active.Render(textutil.Truncate(compact, p.Width))
}
