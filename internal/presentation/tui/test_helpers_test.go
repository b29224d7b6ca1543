package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/latexpad/internal/application/settings"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
)

type stubBackend struct {
	mock.Mock
	configured compose.Delimiters
	typeset    int
}

func (s *stubBackend) Name() string {
	return "stub"
}

func (s *stubBackend) Configure(d compose.Delimiters) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(d)
		return args.Error(0)
	}
	s.configured = d
	return nil
}

func (s *stubBackend) Typeset(ctx context.Context, surface widget.Surface) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(surface.Text())
		return args.Error(0)
	}
	s.typeset++
	return nil
}

func newTestModel(t *testing.T, cfg settings.Settings, backend widget.Backend) *Model {
	t.Helper()
	m, err := newModel(cfg, backend, nil, widget.Immediate{}, nil)
	if err != nil {
		t.Fatalf("newModel() error = %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func send(m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func stubClipboard(t *testing.T, write func(string) error) {
	t.Helper()
	original := clipboardWrite
	clipboardWrite = write
	t.Cleanup(func() { clipboardWrite = original })
}
