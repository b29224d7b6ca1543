// Package typeset selects a rendering backend by name.
package typeset

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/fault"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/mathjax"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/mathml"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/unicodemath"
)

// Names lists the available backends.
func Names() []string {
	return []string{unicodemath.Name, mathml.Name, mathjax.Name}
}

// New returns a fresh, unconfigured backend. Each widget needs its own.
func New(name string) (widget.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case unicodemath.Name, "":
		return unicodemath.New(), nil
	case mathml.Name:
		return mathml.New(), nil
	case mathjax.Name:
		return mathjax.New(), nil
	}
	return nil, errors.WithHintf(
		fault.Configuration("unknown backend %q", name),
		"choose one of: %s", strings.Join(Names(), ", "),
	)
}
