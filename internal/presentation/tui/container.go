// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/latexpad/internal/presentation/tui/components/editor"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/footer"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/modal"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/palette"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/preview"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/selector"
	"github.com/tesso57/latexpad/internal/presentation/tui/state"
	"github.com/tesso57/latexpad/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Tabs:    m.buildTabsProps(),
		Palette: m.buildPaletteProps(),
		Editor:  m.buildEditorProps(),
		Preview: m.buildPreviewProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildTabsProps() selector.Props {
	theme := m.settings.Theme
	return selector.Props{
		Labels:   m.state.Tabs.Labels(),
		Selected: m.state.Tabs.Selected(),
		Width:    m.state.Width,
		Accent:   theme.Accent,
		Muted:    theme.Muted,
	}
}

func (m *Model) buildPaletteProps() palette.Props {
	theme := m.settings.Theme
	var snippet string
	if b := m.state.Grid.Selected(); b != nil {
		snippet = b.Snippet
	}
	return palette.Props{
		Title:   m.widget.ActiveLabel(),
		Labels:  m.state.Grid.Labels(),
		Cursor:  m.state.Grid.Cursor(),
		Columns: m.state.Columns,
		Width:   m.state.PaletteWidth,
		Height:  m.state.PaletteRows,
		Active:  m.state.Focus == state.PaletteFocus,
		Snippet: snippet,
		Accent:  theme.Accent,
		Border:  theme.Border,
		Muted:   theme.Muted,
	}
}

func (m *Model) buildEditorProps() editor.Props {
	theme := m.settings.Theme
	return editor.Props{
		View:   m.state.EditorArea.View(),
		Width:  m.state.SideWidth,
		Active: m.state.Focus == state.EditorFocus,
		Accent: theme.Accent,
		Border: theme.Border,
	}
}

func (m *Model) buildPreviewProps() preview.Props {
	theme := m.settings.Theme
	return preview.Props{
		Rendered: m.state.Preview.Text(),
		Source:   m.widget.Render(),
		Backend:  m.widget.Backend().Name(),
		Width:    m.state.SideWidth,
		Accent:   theme.Accent,
		Border:   theme.Border,
		Muted:    theme.Muted,
	}
}

func (m *Model) buildModalProps() modal.Props {
	theme := m.settings.Theme
	props := modal.Props{
		Width:  m.state.Width,
		Height: m.state.Height,
		Accent: theme.Accent,
		Border: theme.Border,
	}
	switch {
	case m.state.Session == state.QuitView:
		props.Visible = true
		props.Kind = modal.Quit
		props.Body = fmt.Sprintf("Quit latexpad?\n\n%s\n\n(y/n)", m.widget.Render())
	case m.state.Help.ShowAll:
		props.Visible = true
		props.Kind = modal.Help
		props.Body = m.state.Help.View(&m.state.Keys)
	}
	return props
}

func (m *Model) buildFooterProps() footer.Props {
	return footer.Props{
		Text:  state.FooterText(m.state.Err, m.state.StatusMessage, state.FooterHelpText(m.state.Help, m.state.Keys)),
		Width: m.state.Width,
		Muted: m.settings.Theme.Muted,
	}
}
