// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/editor"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/footer"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/layout"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/modal"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/palette"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/preview"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/selector"
)

// Props aggregates properties for all UI components.
type Props struct {
	Tabs    selector.Props
	Palette palette.Props
	Editor  editor.Props
	Preview preview.Props
	Modal   modal.Props
	Footer  footer.Props
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	side := lipgloss.JoinVertical(
		lipgloss.Left,
		editor.Render(p.Editor),
		preview.Render(p.Preview),
	)

	return layout.Render(layout.Props{
		Tabs:    selector.Render(p.Tabs),
		Palette: palette.Render(p.Palette),
		Side:    side,
		Footer:  footer.Render(p.Footer),
	})
}
