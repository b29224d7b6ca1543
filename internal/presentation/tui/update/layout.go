package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/latexpad/internal/presentation/tui/metrics"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
)

type layoutMetrics struct {
	paletteWidth int
	sideWidth    int
	columns      int
	paletteRows  int
	editorWidth  int
}

// UpdateSizes recomputes the panel sizes from the terminal size.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.PaletteWidth = layout.paletteWidth
	s.SideWidth = layout.sideWidth
	s.Columns = layout.columns
	s.PaletteRows = layout.paletteRows
	s.EditorArea.SetWidth(layout.editorWidth)
	s.EditorArea.SetHeight(metrics.EditorLines)
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	paletteWidth := clampMin(s.Width*metrics.PaletteShare/100, metrics.CellWidth+metrics.BorderWidth+metrics.PaddingWidth)
	sideWidth := clampMin(s.Width-paletteWidth, metrics.BorderWidth+metrics.PaddingWidth+1)

	inner := paletteWidth - metrics.BorderWidth - metrics.PaddingWidth
	columns := clampMin(inner/metrics.CellWidth, 1)

	// The palette panel spends two lines on its border, one on the title
	// and one on the snippet of the highlighted button.
	available := s.Height - metrics.TabLines - footerHeight(s)
	paletteRows := clampMin(available-metrics.BorderWidth-2, 1)

	return layoutMetrics{
		paletteWidth: paletteWidth - metrics.BorderWidth,
		sideWidth:    sideWidth - metrics.BorderWidth,
		columns:      columns,
		paletteRows:  paletteRows,
		editorWidth:  clampMin(sideWidth-metrics.BorderWidth-metrics.PaddingWidth, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Err, s.StatusMessage, state.FooterHelpText(s.Help, s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
