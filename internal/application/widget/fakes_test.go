package widget

import (
	"context"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/event"
)

type fakeSurface struct {
	mu   sync.Mutex
	text string
}

func (s *fakeSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *fakeSurface) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

type fakeInput struct {
	fakeSurface
	edits   event.Emitter[string]
	setText int
}

func (i *fakeInput) SetText(text string) {
	i.setText++
	i.fakeSurface.SetText(text)
}

func (i *fakeInput) OnInput(fn func(string)) *event.Subscription {
	return i.edits.Subscribe(fn)
}

// Type simulates the user editing the control.
func (i *fakeInput) Type(text string) {
	i.fakeSurface.SetText(text)
	i.edits.Emit(text)
}

type fakeSelector struct {
	labels   []string
	selected int
	changes  event.Emitter[int]
}

func (s *fakeSelector) SetOptions(labels []string, selected int) {
	s.labels = append([]string(nil), labels...)
	s.selected = selected
}

func (s *fakeSelector) Select(i int) {
	s.selected = i
}

func (s *fakeSelector) OnChange(fn func(int)) *event.Subscription {
	return s.changes.Subscribe(fn)
}

func (s *fakeSelector) Choose(i int) {
	s.selected = i
	s.changes.Emit(i)
}

type fakePalette struct {
	groups     []ButtonGroup
	visibility compose.Visibility
	presses    event.Emitter[Press]
}

func (p *fakePalette) SetGroups(groups []ButtonGroup) { p.groups = groups }

func (p *fakePalette) SetVisibility(v compose.Visibility) {
	p.visibility = append(compose.Visibility(nil), v...)
}

func (p *fakePalette) OnPress(fn func(Press)) *event.Subscription {
	return p.presses.Subscribe(fn)
}

func (p *fakePalette) Click(category, index int) {
	b := p.groups[category].Buttons[index]
	p.presses.Emit(Press{Category: category, Index: index, Snippet: b.Snippet})
}

// upperBackend typesets by upper-casing the text between the delimiters.
type upperBackend struct {
	mock.Mock
	delims compose.Delimiters
	passes int
}

func (b *upperBackend) Name() string { return "upper" }

func (b *upperBackend) Configure(d compose.Delimiters) error {
	if len(b.ExpectedCalls) > 0 {
		return b.Called(d).Error(0)
	}
	b.delims = d
	return nil
}

func (b *upperBackend) Typeset(_ context.Context, s Surface) error {
	b.passes++
	text := s.Text()
	if !strings.HasPrefix(text, b.delims.Open) || !strings.HasSuffix(text, b.delims.Close) {
		return nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, b.delims.Open), b.delims.Close)
	s.SetText(strings.ToUpper(inner))
	return nil
}

type regions struct {
	rendered *fakeSurface
	input    *fakeInput
	selector *fakeSelector
	palette  *fakePalette
}

func newRegions() *regions {
	return &regions{
		rendered: &fakeSurface{},
		input:    &fakeInput{},
		selector: &fakeSelector{},
		palette:  &fakePalette{},
	}
}

func (r *regions) locator() Locator {
	return LocatorFunc(func(key string) (any, bool) {
		switch key {
		case RenderedKey:
			return r.rendered, true
		case InputKey:
			return r.input, true
		case SelectorKey:
			return r.selector, true
		case PaletteKey:
			return r.palette, true
		default:
			return nil, false
		}
	})
}

func (r *regions) handles(opts Options) Options {
	opts.Rendered = ByHandle[Surface](r.rendered)
	opts.Input = ByHandle[Input](r.input)
	opts.Selector = ByHandle[Selector](r.selector)
	opts.Palette = ByHandle[Palette](r.palette)
	return opts
}
