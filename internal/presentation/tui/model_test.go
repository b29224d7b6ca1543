package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/latexpad/internal/application/settings"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/unicodemath"
	"github.com/tesso57/latexpad/internal/presentation/tui/metrics"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
	"github.com/tesso57/latexpad/internal/presentation/tui/update"
)

func TestNewModel(t *testing.T) {
	backend := &stubBackend{}
	m := newTestModel(t, settings.Default(), backend)

	assert.Equal(t, state.ComposeView, m.state.Session)
	assert.Equal(t, state.PaletteFocus, m.state.Focus)
	assert.Equal(t, catalog.DefaultLabels(), m.state.Tabs.Labels())
	assert.Equal(t, 0, m.state.Tabs.Selected())
	assert.Equal(t, 0, m.state.Grid.Active())
	assert.Equal(t, compose.DefaultDelimiters(), backend.configured)
	assert.Equal(t, "$$$$", m.Formula())
	assert.Equal(t, "$$$$", m.state.Preview.Text())
	assert.Equal(t, metrics.DefaultColumns, m.state.Columns)
	assert.Positive(t, backend.typeset)
}

func TestNewModel_CustomDelimiters(t *testing.T) {
	cfg := settings.Default()
	cfg.Delimiters = settings.DelimiterConfig{Open: `\(`, Close: `\)`}
	backend := &stubBackend{}
	m := newTestModel(t, cfg, backend)

	assert.Equal(t, `\(\)`, m.Formula())
	assert.Equal(t, compose.Delimiters{Open: `\(`, Close: `\)`}, backend.configured)
}

func TestNewModel_BackendRefusesDelimiters(t *testing.T) {
	backend := &stubBackend{}
	backend.On("Configure", compose.DefaultDelimiters()).Return(errors.New("already bound"))

	_, err := newModel(settings.Default(), backend, nil, widget.Immediate{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already bound")
	backend.AssertExpectations(t)
}

func TestNewModel_LabelMismatch(t *testing.T) {
	cfg := settings.Default()
	cfg.Labels = []string{"only one"}

	_, err := newModel(cfg, &stubBackend{}, nil, widget.Immediate{}, nil)
	require.Error(t, err)
}

func TestInsertFromPalette(t *testing.T) {
	groups := catalog.DefaultGroups()
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, keyMsg(tea.KeyEnter))
	assert.Equal(t, "$$"+groups[0][0]+"$$", m.Formula())

	m, _ = send(m, runes("l"))
	assert.Equal(t, 1, m.state.Grid.Cursor())
	m, _ = send(m, keyMsg(tea.KeySpace))
	want := "$$" + groups[0][0] + groups[0][1] + "$$"
	assert.Equal(t, want, m.Formula())
	assert.Equal(t, want, m.state.Preview.Text())
	assert.Equal(t, groups[0][0]+groups[0][1], m.state.EditorArea.Value())
}

func TestSwitchCategory(t *testing.T) {
	groups := catalog.DefaultGroups()
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, runes("l"))
	m, _ = send(m, keyMsg(tea.KeyCtrlN))
	assert.Equal(t, 1, m.state.Tabs.Selected())
	assert.Equal(t, 1, m.state.Grid.Active())
	assert.Equal(t, 0, m.state.Grid.Cursor(), "cursor should reset on category change")
	assert.Equal(t, catalog.DefaultLabels()[1], m.widget.ActiveLabel())

	m, _ = send(m, keyMsg(tea.KeyEnter))
	assert.Equal(t, "$$"+groups[1][0]+"$$", m.Formula())

	// Stepping back from the first category wraps around.
	m, _ = send(m, keyMsg(tea.KeyCtrlP))
	m, _ = send(m, keyMsg(tea.KeyCtrlP))
	assert.Equal(t, len(groups)-1, m.state.Grid.Active())
}

func TestEditorTyping(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, keyMsg(tea.KeyTab))
	require.Equal(t, state.EditorFocus, m.state.Focus)

	for _, s := range []string{"x", "^", "2", "[", "l"} {
		m, _ = send(m, runes(s))
	}
	assert.Equal(t, "$$x^2[l$$", m.Formula())
	assert.Equal(t, "$$x^2[l$$", m.state.Preview.Text())
	assert.Equal(t, 0, m.state.Tabs.Selected(), "brackets belong to the editor while it has focus")

	m, _ = send(m, keyMsg(tea.KeyTab))
	assert.Equal(t, state.PaletteFocus, m.state.Focus)
	m, _ = send(m, runes("]"))
	assert.Equal(t, 1, m.state.Tabs.Selected())
}

func TestClear(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, keyMsg(tea.KeyEnter))
	m, _ = send(m, keyMsg(tea.KeyCtrlL))
	assert.Equal(t, "$$$$", m.Formula())
	assert.Equal(t, "", m.state.EditorArea.Value())
	assert.Equal(t, "$$$$", m.state.Preview.Text())
	assert.Equal(t, "Cleared", m.state.StatusMessage)
}

func TestCopy(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})
	m := newTestModel(t, settings.Default(), &stubBackend{})
	m, _ = send(m, keyMsg(tea.KeyEnter))

	m, cmd := send(m, keyMsg(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, m.Formula(), copied)
	assert.Equal(t, "Copied "+copied, m.state.StatusMessage)
	assert.NoError(t, m.state.Err)
}

func TestCopyFailure(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no xclip") })
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, cmd := send(m, keyMsg(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	require.Error(t, m.state.Err)
	assert.Contains(t, m.View(), "no xclip")
}

func TestTypesetFailureShown(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, cmd := send(m, update.TypesetDoneMsg{Completion: widget.Completion{Key: widget.RenderJobKey, Err: errors.New("bad input")}})
	assert.Nil(t, cmd, "no queue to wait on")
	require.Error(t, m.state.Err)
	assert.Contains(t, m.state.Err.Error(), "bad input")

	m, _ = send(m, update.TypesetDoneMsg{Completion: widget.Completion{Key: widget.RenderJobKey}})
	assert.NoError(t, m.state.Err)
}

func TestTypesetErrorsAreLoggedNotFatal(t *testing.T) {
	backend := &stubBackend{}
	backend.On("Configure", mock.Anything).Return(nil)
	backend.On("Typeset", mock.Anything).Return(errors.New("boom"))

	m := newTestModel(t, settings.Default(), backend)
	m, _ = send(m, keyMsg(tea.KeyEnter))

	assert.NotEqual(t, "$$$$", m.Formula())
	assert.Equal(t, m.Formula(), m.state.Preview.Text())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.state.Width)
	wantColumns := (100*metrics.PaletteShare/100 - metrics.BorderWidth - metrics.PaddingWidth) / metrics.CellWidth
	assert.Equal(t, wantColumns, m.state.Columns)

	m, _ = send(m, runes("j"))
	assert.Equal(t, wantColumns, m.state.Grid.Cursor(), "down moves one row")
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, settings.Default(), &stubBackend{})
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = send(m, runes("?"))
	require.True(t, m.state.Help.ShowAll)
	assert.Contains(t, m.View(), "copy formula")

	m, _ = send(m, runes("x"))
	assert.False(t, m.state.Help.ShowAll)
}

func TestView(t *testing.T) {
	m := newTestModel(t, settings.Default(), unicodemath.New())
	m, _ = send(m, tea.WindowSizeMsg{Width: 160, Height: 40})
	m, _ = send(m, keyMsg(tea.KeyTab))
	for _, s := range []string{`\`, "a", "l", "p", "h", "a"} {
		m, _ = send(m, runes(s))
	}

	out := m.View()
	assert.Contains(t, out, "Relation Symbols")
	assert.Contains(t, out, "LaTeX")
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "α")
	assert.True(t, strings.Contains(out, `\alpha`), "source should be shown under the preview")
}

func TestNewModel_Queue(t *testing.T) {
	m, err := NewModel(context.Background(), settings.Default(), unicodemath.New(), nil)
	require.NoError(t, err)

	m, _ = send(m, keyMsg(tea.KeyTab))
	for _, s := range []string{`\`, "b", "e", "t", "a"} {
		m, _ = send(m, runes(s))
	}
	m.Close()

	assert.Equal(t, `$$\beta$$`, m.Formula())
	assert.Equal(t, "β", m.state.Preview.Text())
}
