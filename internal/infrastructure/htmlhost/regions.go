package htmlhost

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/event"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// Element is a generic container. It serves as the rendered output region
// or, once it receives groups, as the button palette.
type Element struct {
	page *Page
	sel  *goquery.Selection

	palette    bool
	groups     []widget.ButtonGroup
	visibility compose.Visibility
	presses    event.Emitter[widget.Press]
}

// Text returns the element's text content.
func (e *Element) Text() string {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	return e.sel.Text()
}

// SetText replaces the element's content with text.
func (e *Element) SetText(text string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	e.sel.SetText(text)
}

// SetMarkup replaces the element's content with parsed markup.
func (e *Element) SetMarkup(markup string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	e.sel.SetHtml(markup)
}

// Mark sets an attribute on the element.
func (e *Element) Mark(attr, value string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	e.sel.SetAttr(attr, value)
}

// SetGroups implements widget.Palette.
func (e *Element) SetGroups(groups []widget.ButtonGroup) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	e.palette = true
	e.groups = append([]widget.ButtonGroup(nil), groups...)
	e.flush()
}

// SetVisibility implements widget.Palette.
func (e *Element) SetVisibility(v compose.Visibility) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	e.visibility = append(compose.Visibility(nil), v...)
	e.flush()
}

// OnPress implements widget.Palette.
func (e *Element) OnPress(fn func(widget.Press)) *event.Subscription {
	return e.presses.Subscribe(fn)
}

// Click simulates activating button index of category.
func (e *Element) Click(category, index int) error {
	e.page.mu.Lock()
	if category < 0 || category >= len(e.groups) {
		e.page.mu.Unlock()
		return fault.Range("category %d out of range [0,%d)", category, len(e.groups))
	}
	buttons := e.groups[category].Buttons
	if index < 0 || index >= len(buttons) {
		e.page.mu.Unlock()
		return fault.Range("button %d out of range [0,%d)", index, len(buttons))
	}
	snippet := buttons[index].Snippet
	e.page.mu.Unlock()

	e.presses.Emit(widget.Press{Category: category, Index: index, Snippet: snippet})
	return nil
}

// flush rewrites the palette markup from the current groups, picking up
// labels typeset since the last call. The page lock must be held.
func (e *Element) flush() {
	if !e.palette {
		return
	}
	e.sel.Empty()
	for i, g := range e.groups {
		e.sel.AppendHtml("<span></span>")
		span := e.sel.Children().Last()
		span.SetAttr("id", g.ID)
		span.SetAttr("title", g.Label)
		if !e.visibility.Shown(i) {
			span.SetAttr("style", "display:none")
		}
		for _, b := range g.Buttons {
			span.AppendHtml(`<button type="button"></button>`)
			btn := span.Children().Last()
			btn.SetAttr("class", b.Class)
			btn.SetAttr("data-formula", b.Snippet)
			if m := b.Markup(); m != "" {
				btn.SetHtml(m)
			} else {
				btn.SetText(b.Text())
			}
		}
	}
}

// Input is a textarea or input element.
type Input struct {
	page  *Page
	sel   *goquery.Selection
	edits event.Emitter[string]
}

// Text returns the current value.
func (in *Input) Text() string {
	in.page.mu.Lock()
	defer in.page.mu.Unlock()
	if goquery.NodeName(in.sel) == "input" {
		return in.sel.AttrOr("value", "")
	}
	return in.sel.Text()
}

// SetText replaces the value without raising an input event.
func (in *Input) SetText(text string) {
	in.page.mu.Lock()
	defer in.page.mu.Unlock()
	if goquery.NodeName(in.sel) == "input" {
		in.sel.SetAttr("value", text)
		return
	}
	in.sel.SetText(text)
}

// OnInput implements widget.Input.
func (in *Input) OnInput(fn func(string)) *event.Subscription {
	return in.edits.Subscribe(fn)
}

// Type simulates the user replacing the value.
func (in *Input) Type(text string) {
	in.SetText(text)
	in.edits.Emit(text)
}

// Selector is a select element.
type Selector struct {
	page    *Page
	sel     *goquery.Selection
	count   int
	changes event.Emitter[int]
}

// SetOptions implements widget.Selector.
func (s *Selector) SetOptions(labels []string, selected int) {
	s.page.mu.Lock()
	defer s.page.mu.Unlock()
	s.sel.Empty()
	for i, label := range labels {
		s.sel.AppendHtml("<option></option>")
		opt := s.sel.Children().Last()
		opt.SetAttr("value", strconv.Itoa(i))
		opt.SetText(label)
		if i == selected {
			opt.SetAttr("selected", "selected")
		}
	}
	s.count = len(labels)
}

// OnChange implements widget.Selector.
func (s *Selector) OnChange(fn func(int)) *event.Subscription {
	return s.changes.Subscribe(fn)
}

// Selected returns the index of the selected option, -1 when none is.
func (s *Selector) Selected() int {
	s.page.mu.Lock()
	defer s.page.mu.Unlock()
	selected := -1
	s.sel.Children().EachWithBreak(func(i int, opt *goquery.Selection) bool {
		if _, ok := opt.Attr("selected"); ok {
			selected = i
			return false
		}
		return true
	})
	return selected
}

// Choose simulates the user picking option index.
func (s *Selector) Choose(index int) error {
	s.page.mu.Lock()
	if index < 0 || index >= s.count {
		s.page.mu.Unlock()
		return fault.Range("option %d out of range [0,%d)", index, s.count)
	}
	s.mark(index)
	s.page.mu.Unlock()

	s.changes.Emit(index)
	return nil
}

// Select implements widget.Selector.
func (s *Selector) Select(index int) {
	s.page.mu.Lock()
	defer s.page.mu.Unlock()
	if index < 0 || index >= s.count {
		return
	}
	s.mark(index)
}

// mark moves the selected attribute to option index. The page lock must be
// held.
func (s *Selector) mark(index int) {
	s.sel.Children().Each(func(i int, opt *goquery.Selection) {
		if i == index {
			opt.SetAttr("selected", "selected")
		} else {
			opt.RemoveAttr("selected")
		}
	})
}
