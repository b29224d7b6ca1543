package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/latexpad/internal/application/settings"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/presentation/tui/metrics"
	"github.com/tesso57/latexpad/internal/presentation/tui/presenter"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
	"github.com/tesso57/latexpad/internal/presentation/tui/update"
	"github.com/tesso57/latexpad/internal/presentation/tui/view"
	"go.uber.org/zap"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	widget   *widget.Widget
	done     <-chan widget.Completion
	stop     func()
	state    *state.ModelState
}

// NewModel creates the composer model. Typesetting runs on a background
// queue bound to ctx; call Close when the program ends.
func NewModel(ctx context.Context, cfg settings.Settings, backend widget.Backend, log *zap.SugaredLogger) (*Model, error) {
	queue := widget.NewQueue(ctx, log)
	m, err := newModel(cfg, backend, log, queue, queue.Done())
	if err != nil {
		queue.Close()
		return nil, err
	}
	m.stop = queue.Close
	return m, nil
}

func newModel(cfg settings.Settings, backend widget.Backend, log *zap.SugaredLogger, scheduler widget.Scheduler, done <-chan widget.Completion) (*Model, error) {
	st := newModelState(cfg)

	w, err := widget.New(nil, widget.Options{
		Rendered:   widget.ByHandle[widget.Surface](st.Preview),
		Input:      widget.ByHandle[widget.Input](st.Editor),
		Selector:   widget.ByHandle[widget.Selector](st.Tabs),
		Palette:    widget.ByHandle[widget.Palette](st.Grid),
		Labels:     cfg.Labels,
		Delimiters: cfg.EffectiveDelimiters(),
		Backend:    backend,
		Scheduler:  scheduler,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	return &Model{
		settings: cfg,
		widget:   w,
		done:     done,
		state:    st,
	}, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, update.WaitTypesetCmd(m.done))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
		return m, nil
	case update.TypesetDoneMsg:
		return m, update.HandleTypesetDoneMsg(m.state, msg, m.deps())
	case update.CopiedMsg:
		update.HandleCopiedMsg(m.state, msg)
		return m, nil
	}

	if m.state.Focus == state.EditorFocus && m.state.Session == state.ComposeView {
		return m, update.HandleEditorInput(m.state, msg)
	}
	return m, nil
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

// Formula returns the delimited formula composed so far.
func (m *Model) Formula() string {
	return m.widget.Render()
}

// Close detaches the composer and stops background typesetting.
func (m *Model) Close() {
	m.widget.Close()
	if m.stop != nil {
		m.stop()
	}
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Render:    m.widget.Render,
		Clipboard: clipboardWrite,
		Done:      m.done,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:    state.ComposeView,
		Focus:      state.PaletteFocus,
		EditorArea: newEditorArea(),
		Help:       help.New(),
		Keys:       state.NewKeyMap(cfg.KeyMap),
		Columns:    metrics.DefaultColumns,
		Preview:    presenter.NewPreview(),
		Tabs:       presenter.NewTabs(),
		Grid:       presenter.NewGrid(),
	}
	st.Editor = presenter.NewEditor(&st.EditorArea)
	return st
}

func newEditorArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = `type LaTeX, e.g. \frac{a}{b}`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(40)
	ta.SetHeight(metrics.EditorLines)
	ta.Blur()
	return ta
}
