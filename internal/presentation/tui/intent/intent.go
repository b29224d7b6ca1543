// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	NextGroup
	PrevGroup
	Up
	Down
	Left
	Right
	Insert
	ToggleFocus
	Copy
	Clear
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Plain is set for printable shortcuts, which the editor keeps.
	Plain bool
}

// Global reports whether the intent applies while the editor has focus.
// Plain keys belong to the editor there.
func (i Intent) Global() bool {
	if i.Plain {
		return false
	}
	switch i.Type {
	case Quit, NextGroup, PrevGroup, ToggleFocus, Copy, Clear:
		return true
	}
	return false
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.NextGroup):
		return Intent{Type: NextGroup}
	case msg.String() == "]":
		return Intent{Type: NextGroup, Plain: true}
	case key.Matches(msg, keys.PrevGroup):
		return Intent{Type: PrevGroup}
	case msg.String() == "[":
		return Intent{Type: PrevGroup, Plain: true}
	case key.Matches(msg, keys.Focus):
		return Intent{Type: ToggleFocus}
	case key.Matches(msg, keys.Copy):
		return Intent{Type: Copy}
	case key.Matches(msg, keys.Clear):
		return Intent{Type: Clear}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Left):
		return Intent{Type: Left}
	case key.Matches(msg, keys.Right):
		return Intent{Type: Right}
	case key.Matches(msg, keys.Insert):
		return Intent{Type: Insert}
	default:
		return Intent{Type: None}
	}
}
