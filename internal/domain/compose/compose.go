// Package compose holds the formula composition state and its reactions.
package compose

import (
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/event"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// Delimiters mark where a formula begins and ends.
type Delimiters struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// DefaultDelimiters returns the display-math pair "$$" / "$$".
func DefaultDelimiters() Delimiters {
	return Delimiters{Open: "$$", Close: "$$"}
}

// Wrap returns text surrounded by the delimiters.
func (d Delimiters) Wrap(text string) string {
	return d.Open + text + d.Close
}

// State is a snapshot of the composition.
type State struct {
	Active int
	Buffer string
	Open   string
	Close  string
}

// Observer reacts to composition changes.
type Observer interface {
	VisibilityChanged(Visibility)
	BufferChanged(string)
}

// Composer owns the active category and the formula buffer.
type Composer struct {
	catalog    *catalog.Catalog
	delimiters Delimiters
	active     int
	buffer     string

	visibility event.Emitter[Visibility]
	buffers    event.Emitter[string]
}

// New creates a composer with category 0 active and an empty buffer.
func New(c *catalog.Catalog, d Delimiters) (*Composer, error) {
	if c == nil || c.Len() == 0 {
		return nil, fault.Configuration("composer needs a non-empty catalog")
	}
	return &Composer{catalog: c, delimiters: d}, nil
}

// Catalog returns the catalog the composer was built with.
func (c *Composer) Catalog() *catalog.Catalog {
	return c.catalog
}

// Delimiters returns the fixed delimiter pair.
func (c *Composer) Delimiters() Delimiters {
	return c.delimiters
}

// SelectCategory activates category index and publishes the new visibility.
func (c *Composer) SelectCategory(index int) error {
	if index < 0 || index >= c.catalog.Len() {
		return fault.Range("category index %d outside [0, %d)", index, c.catalog.Len())
	}
	c.active = index
	c.visibility.Emit(c.Visibility())
	return nil
}

// AppendSnippet appends the raw snippet to the buffer.
func (c *Composer) AppendSnippet(snippet string) {
	c.SetBuffer(c.buffer + snippet)
}

// SetBuffer replaces the buffer, typically after a direct edit.
func (c *Composer) SetBuffer(text string) {
	c.buffer = text
	c.buffers.Emit(c.buffer)
}

// Render returns the delimited formula handed to the typesetting backend.
func (c *Composer) Render() string {
	return c.delimiters.Wrap(c.buffer)
}

// Buffer returns the undelimited formula text.
func (c *Composer) Buffer() string {
	return c.buffer
}

// Active returns the index of the active category.
func (c *Composer) Active() int {
	return c.active
}

// ActiveCategory returns the active category.
func (c *Composer) ActiveCategory() catalog.Category {
	cat, _ := c.catalog.Category(c.active)
	return cat
}

// Visibility projects the active category onto the palette groups.
func (c *Composer) Visibility() Visibility {
	return Project(c.catalog.Len(), c.active)
}

// State returns a snapshot of the composition.
func (c *Composer) State() State {
	return State{
		Active: c.active,
		Buffer: c.buffer,
		Open:   c.delimiters.Open,
		Close:  c.delimiters.Close,
	}
}

// Observe registers obs for visibility and buffer changes.
func (c *Composer) Observe(obs Observer) *event.Subscription {
	vis := c.visibility.Subscribe(obs.VisibilityChanged)
	buf := c.buffers.Subscribe(obs.BufferChanged)
	return event.NewSubscription(func() {
		vis.Unsubscribe()
		buf.Unsubscribe()
	})
}
