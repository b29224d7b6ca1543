package widget

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/event"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// Surface is a display region holding text.
type Surface interface {
	Text() string
	SetText(string)
}

// MarkupSurface is a Surface that can also hold rendered markup.
type MarkupSurface interface {
	Surface
	SetMarkup(string)
}

// Input is the editable text region.
type Input interface {
	Surface
	OnInput(func(string)) *event.Subscription
}

// Selector is the category chooser. Select moves the selection without
// raising a change event.
type Selector interface {
	SetOptions(labels []string, selected int)
	Select(index int)
	OnChange(func(int)) *event.Subscription
}

// Palette holds one button group per category.
type Palette interface {
	SetGroups([]ButtonGroup)
	SetVisibility(compose.Visibility)
	OnPress(func(Press)) *event.Subscription
}

// Press is a button activation.
type Press struct {
	Category int
	Index    int
	Snippet  string
}

// ButtonGroup is the set of buttons of one category.
type ButtonGroup struct {
	ID      string
	Label   string
	Buttons []*Button
}

// Button inserts its snippet when activated. Its label is a Surface so the
// typesetting backend can render it.
type Button struct {
	Snippet string
	Class   string

	mu     sync.RWMutex
	label  string
	markup string
}

// NewButton creates a button labelled with text.
func NewButton(snippet, class, text string) *Button {
	return &Button{Snippet: snippet, Class: class, label: text}
}

// Text returns the button label.
func (b *Button) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.label
}

// SetText replaces the button label and clears any markup.
func (b *Button) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = text
	b.markup = ""
}

// SetMarkup stores rendered markup for the label.
func (b *Button) SetMarkup(markup string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markup = markup
}

// Markup returns the rendered markup, empty when none was produced.
func (b *Button) Markup() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.markup
}

// Locator resolves a region key against the host environment.
type Locator interface {
	Lookup(key string) (any, bool)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(key string) (any, bool)

// Lookup implements Locator.
func (f LocatorFunc) Lookup(key string) (any, bool) {
	return f(key)
}

// Ref names a region either by handle or by lookup key. A handle wins.
type Ref[T any] struct {
	Handle T
	Key    string
}

// ByHandle refers to an already constructed region.
func ByHandle[T any](h T) Ref[T] {
	return Ref[T]{Handle: h}
}

// ByKey refers to a region resolved through the Locator.
func ByKey[T any](key string) Ref[T] {
	return Ref[T]{Key: key}
}

func resolve[T any](loc Locator, role string, ref Ref[T]) (T, error) {
	var zero T
	if any(ref.Handle) != nil {
		return ref.Handle, nil
	}
	if ref.Key == "" {
		return zero, fault.Configuration("%s region: neither handle nor key given", role)
	}
	if loc == nil {
		return zero, errors.WithHint(
			fault.NotFound("%s region %q: no locator to resolve it", role, ref.Key),
			"pass a region handle or a locator",
		)
	}
	v, ok := loc.Lookup(ref.Key)
	if !ok || v == nil {
		return zero, errors.WithHint(
			fault.NotFound("%s region %q not found", role, ref.Key),
			"check that the host defines an element with this id",
		)
	}
	h, ok := v.(T)
	if !ok {
		return zero, fault.Configuration("%s region %q (%T) cannot act as %s", role, ref.Key, v, role)
	}
	return h, nil
}
