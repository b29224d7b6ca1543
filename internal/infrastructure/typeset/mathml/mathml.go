// Package mathml typesets delimited LaTeX as MathML markup.
package mathml

import (
	"context"
	"html"
	"strings"

	"git.sr.ht/~mekyt/latex2mathml"
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/delim"
)

const (
	// Name identifies the backend in configuration.
	Name = "mathml"

	xmlns = "http://www.w3.org/1998/Math/MathML"
)

// Backend converts math segments to MathML. Surfaces that hold markup
// receive it through SetMarkup and keep their source text; others have
// their text replaced.
type Backend struct {
	binding delim.Binding
	indent  int
}

// New returns an unconfigured backend.
func New() *Backend {
	return &Backend{indent: 2}
}

// Name implements widget.Backend.
func (b *Backend) Name() string { return Name }

// Configure implements widget.Backend.
func (b *Backend) Configure(d compose.Delimiters) error {
	return b.binding.Bind(d)
}

// Typeset implements widget.Backend. A plain surface without delimited math
// is left alone, so text already converted stays as it is.
func (b *Backend) Typeset(ctx context.Context, s widget.Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d, ok := b.binding.Pair()
	if !ok {
		return fault.Configuration("%s backend used before Configure", Name)
	}
	text := s.Text()
	m, isMarkup := s.(widget.MarkupSurface)
	if !isMarkup && !hasMath(text, d) {
		return nil
	}
	markup, err := b.Markup(text, d)
	if err != nil {
		return err
	}
	if isMarkup {
		m.SetMarkup(markup)
		return nil
	}
	s.SetText(markup)
	return nil
}

// Markup returns text with plain runs escaped and math runs converted.
func (b *Backend) Markup(text string, d compose.Delimiters) (string, error) {
	display := "inline"
	if d.Open == "$$" || d.Open == `\[` {
		display = "block"
	}
	var out strings.Builder
	for _, seg := range delim.Split(text, d) {
		if !seg.Math {
			out.WriteString(html.EscapeString(seg.Text))
			continue
		}
		m, err := b.convert(seg.Text, display)
		if err != nil {
			return "", err
		}
		out.WriteString(m)
	}
	return out.String(), nil
}

func hasMath(text string, d compose.Delimiters) bool {
	for _, seg := range delim.Split(text, d) {
		if seg.Math {
			return true
		}
	}
	return false
}

func (b *Backend) convert(src, display string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("mathml: convert %q: %v", src, r)
		}
	}()
	return latex2mathml.Convert(src, xmlns, display, b.indent), nil
}
