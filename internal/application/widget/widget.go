// Package widget wires the formula composer to its display regions and to a
// typesetting backend.
package widget

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/event"
	"github.com/tesso57/latexpad/internal/domain/fault"
	"go.uber.org/zap"
)

// Region keys used by hosts that resolve regions by name.
const (
	RenderedKey = "rendered"
	InputKey    = "input"
	SelectorKey = "groups"
	PaletteKey  = "buttons"
)

// RenderJobKey is the scheduler key of output typesetting jobs.
const RenderJobKey = "rendered"

// Options configures a Widget.
type Options struct {
	Rendered Ref[Surface]
	Input    Ref[Input]
	Selector Ref[Selector]
	Palette  Ref[Palette]

	// Labels name the categories in catalog order.
	Labels []string
	// Groups overrides the reference snippet table when non-nil.
	Groups [][]string
	// Delimiters default to "$$" / "$$" when both are empty.
	Delimiters compose.Delimiters

	Backend   Backend
	Scheduler Scheduler
	Logger    *zap.SugaredLogger
}

// Widget is a live formula composer bound to four regions.
type Widget struct {
	composer  *compose.Composer
	rendered  Surface
	input     Input
	selector  Selector
	palette   Palette
	groups    []ButtonGroup
	backend   Backend
	scheduler Scheduler
	log       *zap.SugaredLogger

	subs   event.Group
	closed bool
}

// New resolves the regions, builds the catalog, configures the backend and
// installs the selector options and button groups. It fails without touching
// any region when an input is invalid.
func New(loc Locator, opts Options) (*Widget, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	rendered, err := resolve(loc, "rendered", opts.Rendered)
	if err != nil {
		return nil, err
	}
	input, err := resolve(loc, "input", opts.Input)
	if err != nil {
		return nil, err
	}
	selector, err := resolve(loc, "selector", opts.Selector)
	if err != nil {
		return nil, err
	}
	palette, err := resolve(loc, "palette", opts.Palette)
	if err != nil {
		return nil, err
	}

	if opts.Backend == nil {
		return nil, fault.Configuration("no typesetting backend configured")
	}

	groups := opts.Groups
	if groups == nil {
		groups = catalog.DefaultGroups()
	}
	cat, err := catalog.Build(opts.Labels, groups)
	if err != nil {
		return nil, err
	}

	delims := opts.Delimiters
	if delims.Open == "" && delims.Close == "" {
		delims = compose.DefaultDelimiters()
	}
	composer, err := compose.New(cat, delims)
	if err != nil {
		return nil, err
	}

	if err := opts.Backend.Configure(delims); err != nil {
		return nil, errors.Wrapf(err, "configure %s backend", opts.Backend.Name())
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = Immediate{OnError: func(key string, err error) {
			log.Warnw("typeset failed", "key", key, "error", err)
		}}
	}

	w := &Widget{
		composer:  composer,
		rendered:  rendered,
		input:     input,
		selector:  selector,
		palette:   palette,
		groups:    buildGroups(cat, delims),
		backend:   opts.Backend,
		scheduler: scheduler,
		log:       log,
	}

	selector.SetOptions(cat.Labels(), 0)
	palette.SetGroups(w.groups)

	w.subs.Add(
		composer.Observe(w),
		selector.OnChange(w.selectorChanged),
		palette.OnPress(w.pressed),
		input.OnInput(w.Edit),
	)

	palette.SetVisibility(composer.Visibility())
	w.typesetButtons()
	w.requestRender()

	log.Debugw("widget ready",
		"categories", cat.Len(),
		"backend", opts.Backend.Name(),
		"open", delims.Open,
		"close", delims.Close,
	)
	return w, nil
}

func buildGroups(cat *catalog.Catalog, delims compose.Delimiters) []ButtonGroup {
	categories := cat.Categories()
	groups := make([]ButtonGroup, len(categories))
	for i, c := range categories {
		buttons := make([]*Button, len(c.Snippets))
		for j, snippet := range c.Snippets {
			class := fmt.Sprintf("fjslgb fjslgb%d%d", i, j)
			buttons[j] = NewButton(snippet, class, delims.Wrap(snippet))
		}
		groups[i] = ButtonGroup{
			ID:      fmt.Sprintf("fjslg%d", i),
			Label:   c.Label,
			Buttons: buttons,
		}
	}
	return groups
}

// SelectCategory shows the button group of category index.
func (w *Widget) SelectCategory(index int) error {
	return w.composer.SelectCategory(index)
}

// Press activates button index of category.
func (w *Widget) Press(category, index int) error {
	snippet, err := w.composer.Catalog().Snippet(category, index)
	if err != nil {
		return err
	}
	w.composer.AppendSnippet(snippet)
	return nil
}

// Edit replaces the buffer with text typed directly by the user.
func (w *Widget) Edit(text string) {
	w.composer.SetBuffer(text)
}

// Render returns the delimited formula.
func (w *Widget) Render() string {
	return w.composer.Render()
}

// Buffer returns the undelimited formula.
func (w *Widget) Buffer() string {
	return w.composer.Buffer()
}

// Visibility returns which button group is shown.
func (w *Widget) Visibility() compose.Visibility {
	return w.composer.Visibility()
}

// ActiveLabel returns the label of the shown category.
func (w *Widget) ActiveLabel() string {
	return w.composer.ActiveCategory().Label
}

// State returns a snapshot of the composition.
func (w *Widget) State() compose.State {
	return w.composer.State()
}

// Groups returns the button groups installed in the palette.
func (w *Widget) Groups() []ButtonGroup {
	return w.groups
}

// Backend returns the typesetting backend.
func (w *Widget) Backend() Backend {
	return w.backend
}

// Close detaches every listener. Later region events have no effect.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.subs.Unsubscribe()
	w.log.Debugw("widget closed")
}

// VisibilityChanged implements compose.Observer.
func (w *Widget) VisibilityChanged(v compose.Visibility) {
	w.selector.Select(v.Visible())
	w.palette.SetVisibility(v)
}

// BufferChanged implements compose.Observer.
func (w *Widget) BufferChanged(text string) {
	if w.input.Text() != text {
		w.input.SetText(text)
	}
	w.requestRender()
}

func (w *Widget) selectorChanged(index int) {
	if err := w.SelectCategory(index); err != nil {
		w.log.Warnw("ignoring category change", "index", index, "error", err)
	}
}

func (w *Widget) pressed(p Press) {
	w.composer.AppendSnippet(p.Snippet)
}

func (w *Widget) requestRender() {
	text := w.composer.Render()
	w.scheduler.Schedule(Job{
		Key: RenderJobKey,
		Run: func(ctx context.Context) error {
			w.rendered.SetText(text)
			return w.backend.Typeset(ctx, w.rendered)
		},
	})
}

func (w *Widget) typesetButtons() {
	for _, g := range w.groups {
		for _, b := range g.Buttons {
			label := b.Text()
			w.scheduler.Schedule(Job{
				Key: g.ID + "/" + b.Class,
				Run: func(ctx context.Context) error {
					b.SetText(label)
					return w.backend.Typeset(ctx, b)
				},
			})
		}
	}
}
