// Package unicodemath typesets delimited LaTeX as plain Unicode text for
// terminal display.
package unicodemath

import (
	"context"
	"strings"

	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/delim"
)

// Name identifies the backend in configuration.
const Name = "unicode"

// Backend replaces every delimited math segment of a surface with its
// Unicode rendering. Delimiters are dropped from the output.
type Backend struct {
	binding delim.Binding
}

// New returns an unconfigured backend.
func New() *Backend {
	return &Backend{}
}

// Name implements widget.Backend.
func (b *Backend) Name() string { return Name }

// Configure implements widget.Backend.
func (b *Backend) Configure(d compose.Delimiters) error {
	return b.binding.Bind(d)
}

// Typeset implements widget.Backend.
func (b *Backend) Typeset(ctx context.Context, s widget.Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d, ok := b.binding.Pair()
	if !ok {
		return fault.Configuration("%s backend used before Configure", Name)
	}
	s.SetText(b.Format(s.Text(), d))
	return nil
}

// Format converts the math segments of text delimited by d.
func (b *Backend) Format(text string, d compose.Delimiters) string {
	var out strings.Builder
	for _, seg := range delim.Split(text, d) {
		if seg.Math {
			out.WriteString(Convert(seg.Text))
			continue
		}
		out.WriteString(seg.Text)
	}
	return out.String()
}
