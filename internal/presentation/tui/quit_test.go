package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/latexpad/internal/application/settings"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	cfg := settings.Default()
	cfg.KeyMap.Quit = "q"
	m := newTestModel(t, cfg, &stubBackend{})

	if m.state.Session != state.ComposeView {
		t.Fatal("Initial state should be ComposeView")
	}

	// Quitting asks for confirmation first.
	m, cmd := send(m, runes("q"))
	if m.state.Session != state.QuitView {
		t.Fatal("Should switch to QuitView on 'q'")
	}
	if cmd != nil {
		t.Fatal("Should not return tea.Quit yet")
	}

	m, _ = send(m, runes("n"))
	if m.state.Session != state.ComposeView {
		t.Fatal("Should return to ComposeView on 'n'")
	}

	m, _ = send(m, runes("q"))
	m, _ = send(m, keyMsg(tea.KeyEsc))
	if m.state.Session != state.ComposeView {
		t.Fatal("Should return to ComposeView on 'esc'")
	}

	// Unrelated keys keep the dialog open.
	m, _ = send(m, runes("q"))
	m, cmd = send(m, runes("x"))
	if m.state.Session != state.QuitView || cmd != nil {
		t.Fatal("Unrelated key should keep the dialog open")
	}

	_, cmd = send(m, runes("y"))
	if cmd == nil {
		t.Fatal("Should return a command on 'y'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("Expected tea.QuitMsg on 'y'")
	}
}

func TestQuitFromEditor(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, keyMsg(tea.KeyTab))
	if m.state.Focus != state.EditorFocus {
		t.Fatal("tab should focus the editor")
	}
	m, _ = send(m, keyMsg(tea.KeyCtrlC))
	if m.state.Session != state.QuitView {
		t.Fatal("ctrl+c should open the quit dialog while editing")
	}
	if m.state.Previous != state.ComposeView {
		t.Fatalf("Previous = %v, want ComposeView", m.state.Previous)
	}
}
