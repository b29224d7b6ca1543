// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/latexpad/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	ComposeView Session = iota
	QuitView
)

// Focus is the region receiving keys in ComposeView.
type Focus int

const (
	PaletteFocus Focus = iota
	EditorFocus
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	NextGroup key.Binding
	PrevGroup key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Insert    key.Binding
	Focus     key.Binding
	Copy      key.Binding
	Clear     key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Focus, k.Insert, k.NextGroup}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Insert, k.NextGroup, k.PrevGroup, k.Focus},
		{k.Copy, k.Clear, k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		NextGroup: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextGroup)...),
			key.WithHelp(cfg.NextGroup, "next category"),
		),
		PrevGroup: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevGroup)...),
			key.WithHelp(cfg.PrevGroup, "prev category"),
		),
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "right"),
		),
		Insert: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Insert)...),
			key.WithHelp(cfg.Insert, "insert"),
		),
		Focus: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Focus)...),
			key.WithHelp(cfg.Focus, "palette/editor"),
		),
		Copy: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Copy)...),
			key.WithHelp(cfg.Copy, "copy formula"),
		),
		Clear: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		switch keyName {
		case "space":
			// bubbletea reports the space bar as a literal blank.
			out = append(out, " ")
			continue
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
		out = append(out, keyName)
	}
	return out
}
