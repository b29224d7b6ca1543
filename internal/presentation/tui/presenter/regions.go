// Package presenter adapts TUI models to the composer's display regions.
package presenter

import (
	"sync"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/event"
)

// Preview holds the typeset formula. It is written by the typesetting
// worker and read while rendering the view.
type Preview struct {
	mu   sync.RWMutex
	text string
}

// NewPreview returns an empty preview.
func NewPreview() *Preview {
	return &Preview{}
}

// Text implements widget.Surface.
func (p *Preview) Text() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.text
}

// SetText implements widget.Surface.
func (p *Preview) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
}

// Editor exposes a textarea as the widget input.
type Editor struct {
	area  *textarea.Model
	last  string
	edits event.Emitter[string]
}

// NewEditor wraps area. The pointer must stay valid for the editor's life.
func NewEditor(area *textarea.Model) *Editor {
	return &Editor{area: area, last: area.Value()}
}

// Text implements widget.Surface.
func (e *Editor) Text() string {
	return e.area.Value()
}

// SetText implements widget.Surface. It does not raise an input event.
func (e *Editor) SetText(text string) {
	e.area.SetValue(text)
	e.last = text
}

// OnInput implements widget.Input.
func (e *Editor) OnInput(fn func(string)) *event.Subscription {
	return e.edits.Subscribe(fn)
}

// Sync raises an input event when the user changed the text since the
// last call. It reports whether it did.
func (e *Editor) Sync() bool {
	v := e.area.Value()
	if v == e.last {
		return false
	}
	e.last = v
	e.edits.Emit(v)
	return true
}

// Tabs is the category selector.
type Tabs struct {
	labels   []string
	selected int
	changes  event.Emitter[int]
}

// NewTabs returns an empty selector.
func NewTabs() *Tabs {
	return &Tabs{}
}

// SetOptions implements widget.Selector.
func (t *Tabs) SetOptions(labels []string, selected int) {
	t.labels = append([]string(nil), labels...)
	t.selected = selected
}

// Select implements widget.Selector.
func (t *Tabs) Select(i int) {
	if i < 0 || i >= len(t.labels) {
		return
	}
	t.selected = i
}

// OnChange implements widget.Selector.
func (t *Tabs) OnChange(fn func(int)) *event.Subscription {
	return t.changes.Subscribe(fn)
}

// Labels returns the option labels.
func (t *Tabs) Labels() []string { return t.labels }

// Selected returns the selected option.
func (t *Tabs) Selected() int { return t.selected }

// Choose selects option i and notifies listeners.
func (t *Tabs) Choose(i int) {
	if i < 0 || i >= len(t.labels) {
		return
	}
	t.selected = i
	t.changes.Emit(i)
}

// Step moves the selection by delta, wrapping around.
func (t *Tabs) Step(delta int) {
	n := len(t.labels)
	if n == 0 {
		return
	}
	t.Choose(((t.selected+delta)%n + n) % n)
}

// Grid is the button palette with a cursor over the visible group.
type Grid struct {
	groups     []widget.ButtonGroup
	visibility compose.Visibility
	cursor     int
	presses    event.Emitter[widget.Press]
}

// NewGrid returns an empty palette.
func NewGrid() *Grid {
	return &Grid{}
}

// SetGroups implements widget.Palette.
func (g *Grid) SetGroups(groups []widget.ButtonGroup) {
	g.groups = groups
	g.cursor = 0
}

// SetVisibility implements widget.Palette. The cursor returns to the first
// button when another group becomes visible.
func (g *Grid) SetVisibility(v compose.Visibility) {
	if g.visibility.Visible() != v.Visible() {
		g.cursor = 0
	}
	g.visibility = append(compose.Visibility(nil), v...)
}

// OnPress implements widget.Palette.
func (g *Grid) OnPress(fn func(widget.Press)) *event.Subscription {
	return g.presses.Subscribe(fn)
}

// Active returns the index of the visible group, -1 when none is.
func (g *Grid) Active() int {
	i := g.visibility.Visible()
	if i >= len(g.groups) {
		return -1
	}
	return i
}

// Buttons returns the buttons of the visible group.
func (g *Grid) Buttons() []*widget.Button {
	i := g.Active()
	if i < 0 {
		return nil
	}
	return g.groups[i].Buttons
}

// Labels returns the current labels of the visible buttons.
func (g *Grid) Labels() []string {
	buttons := g.Buttons()
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = b.Text()
	}
	return labels
}

// Cursor returns the index of the highlighted button.
func (g *Grid) Cursor() int { return g.cursor }

// Selected returns the highlighted button, nil when the group is empty.
func (g *Grid) Selected() *widget.Button {
	buttons := g.Buttons()
	if g.cursor < 0 || g.cursor >= len(buttons) {
		return nil
	}
	return buttons[g.cursor]
}

// Move shifts the cursor by dx columns and dy rows in a grid with the given
// number of columns, stopping at the edges.
func (g *Grid) Move(dx, dy, columns int) {
	n := len(g.Buttons())
	if n == 0 {
		return
	}
	if columns < 1 {
		columns = 1
	}
	next := g.cursor + dx + dy*columns
	if dx != 0 && (next < 0 || next >= n || next/columns != g.cursor/columns) {
		return
	}
	if next < 0 || next >= n {
		return
	}
	g.cursor = next
}

// Press activates the highlighted button.
func (g *Grid) Press() bool {
	b := g.Selected()
	if b == nil {
		return false
	}
	g.presses.Emit(widget.Press{Category: g.Active(), Index: g.cursor, Snippet: b.Snippet})
	return true
}
