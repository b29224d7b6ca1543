// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	TabLines      = 2
	EditorLines   = 4
	BorderWidth   = 2
	PaddingWidth  = 2
	PanelTitleGap = 1

	// CellWidth is the width of one palette button, padding included.
	CellWidth      = 14
	DefaultColumns = 6

	// PaletteShare is the percentage of the width given to the palette.
	PaletteShare = 60
)
