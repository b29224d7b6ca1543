// Package mathjax leaves typesetting to MathJax running in the browser. It
// only configures MathJax with the composer's delimiters.
package mathjax

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/delim"
)

const (
	// Name identifies the backend in configuration.
	Name = "mathjax"

	// Loader is the MathJax 2 build the generated pages load.
	Loader = "https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.9/MathJax.js?config=TeX-AMS_HTML"

	// MarkAttr is set on surfaces queued for browser typesetting.
	MarkAttr = "data-mathjax"
)

// Marker is implemented by surfaces that can be flagged for the browser.
type Marker interface {
	Mark(attr, value string)
}

// Backend records the delimiter pair for the page configuration.
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

// Typeset implements widget.Backend. The text is left as is; the browser
// renders it once the page loads.
func (b *Backend) Typeset(ctx context.Context, s widget.Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := b.binding.Pair(); !ok {
		return fault.Configuration("%s backend used before Configure", Name)
	}
	if m, ok := s.(Marker); ok {
		m.Mark(MarkAttr, "typeset")
	}
	return nil
}

type hubConfig struct {
	Tex2jax tex2jax `json:"tex2jax"`
}

type tex2jax struct {
	DisplayMath         [][2]string `json:"displayMath"`
	ProcessEnvironments bool        `json:"processEnvironments"`
}

// ConfigScript returns the text/x-mathjax-config script registering the
// bound delimiters as display math.
func (b *Backend) ConfigScript() (string, error) {
	d, ok := b.binding.Pair()
	if !ok {
		return "", fault.Configuration("%s backend used before Configure", Name)
	}
	cfg, err := json.Marshal(hubConfig{Tex2jax: tex2jax{
		DisplayMath:         [][2]string{{d.Open, d.Close}},
		ProcessEnvironments: true,
	}})
	if err != nil {
		return "", err
	}
	return `<script type="text/x-mathjax-config">MathJax.Hub.Config(` + string(cfg) + `);</script>`, nil
}

// HeadHTML returns the configuration script followed by the loader.
func (b *Backend) HeadHTML() (string, error) {
	script, err := b.ConfigScript()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(script)
	sb.WriteString(`<script type="text/javascript" async src="`)
	sb.WriteString(Loader)
	sb.WriteString(`"></script>`)
	return sb.String(), nil
}
