// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/tesso57/latexpad/internal/presentation/tui/presenter"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	Focus         Focus
	EditorArea    textarea.Model
	Help          help.Model
	Keys          KeyMap
	Width         int
	Height        int
	Columns       int
	PaletteWidth  int
	PaletteRows   int
	SideWidth     int
	StatusMessage string
	Err           error

	Preview *presenter.Preview
	Editor  *presenter.Editor
	Tabs    *presenter.Tabs
	Grid    *presenter.Grid
}
