// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/presentation/tui/intent"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	// Render returns the delimited formula.
	Render func() string
	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
	// Done delivers typesetting completions; nil when typesetting is
	// synchronous.
	Done <-chan widget.Completion
}

// TypesetDoneMsg is emitted when a typesetting job finishes.
type TypesetDoneMsg struct {
	Completion widget.Completion
	// Closed is set once the queue has stopped.
	Closed bool
}

// CopiedMsg is emitted after copying the formula.
type CopiedMsg struct {
	Text string
	Err  error
}

// WaitTypesetCmd waits for the next typesetting completion.
func WaitTypesetCmd(done <-chan widget.Completion) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-done
		return TypesetDoneMsg{Completion: c, Closed: !ok}
	}
}

// CopyCmd creates a command writing text to the clipboard.
func CopyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return CopiedMsg{Text: text, Err: fmt.Errorf("clipboard is not available")}
		}
		return CopiedMsg{Text: text, Err: write(text)}
	}
}

// HandleKeyMsg processes key input. It reports false when the key should
// reach the editor instead.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll && parsed.Type != intent.Quit {
		// Any key closes the help overlay.
		s.Help.ShowAll = false
		return nil, true
	}
	if s.Focus == state.EditorFocus && !parsed.Global() {
		return nil, false
	}

	switch parsed.Type {
	case intent.Quit:
		s.Help.ShowAll = false
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.NextGroup:
		s.Tabs.Step(1)
		return nil, true
	case intent.PrevGroup:
		s.Tabs.Step(-1)
		return nil, true
	case intent.ToggleFocus:
		toggleFocus(s)
		return nil, true
	case intent.Copy:
		return CopyCmd(deps.Clipboard, deps.Render()), true
	case intent.Clear:
		s.EditorArea.SetValue("")
		s.Editor.Sync()
		s.Err = nil
		s.StatusMessage = "Cleared"
		return nil, true
	case intent.Up:
		s.Grid.Move(0, -1, s.Columns)
		return nil, true
	case intent.Down:
		s.Grid.Move(0, 1, s.Columns)
		return nil, true
	case intent.Left:
		s.Grid.Move(-1, 0, s.Columns)
		return nil, true
	case intent.Right:
		s.Grid.Move(1, 0, s.Columns)
		return nil, true
	case intent.Insert:
		s.Grid.Press()
		return nil, true
	}
	return nil, false
}

func toggleFocus(s *state.ModelState) {
	if s.Focus == state.PaletteFocus {
		s.Focus = state.EditorFocus
		s.EditorArea.Focus()
		return
	}
	s.Focus = state.PaletteFocus
	s.EditorArea.Blur()
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

// HandleEditorInput forwards a message to the textarea and reports edits
// to the composer.
func HandleEditorInput(s *state.ModelState, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.EditorArea, cmd = s.EditorArea.Update(msg)
	if s.Editor.Sync() {
		s.StatusMessage = ""
	}
	return cmd
}

// HandleWindowSize stores the new terminal size and recomputes the layout.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateSizes(s)
}

// HandleTypesetDoneMsg records a failed typesetting pass and waits for the
// next completion.
func HandleTypesetDoneMsg(s *state.ModelState, msg TypesetDoneMsg, deps Deps) tea.Cmd {
	if msg.Closed {
		return nil
	}
	if msg.Completion.Err != nil {
		s.Err = fmt.Errorf("typeset %s: %w", msg.Completion.Key, msg.Completion.Err)
	} else if msg.Completion.Key == widget.RenderJobKey {
		s.Err = nil
	}
	return WaitTypesetCmd(deps.Done)
}

// HandleCopiedMsg reports the clipboard result.
func HandleCopiedMsg(s *state.ModelState, msg CopiedMsg) {
	if msg.Err != nil {
		s.Err = fmt.Errorf("clipboard copy failed: %w", msg.Err)
		return
	}
	s.Err = nil
	s.StatusMessage = "Copied " + msg.Text
}
