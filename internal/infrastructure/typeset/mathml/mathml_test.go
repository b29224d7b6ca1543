package mathml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

type textSurface struct{ text string }

func (s *textSurface) Text() string     { return s.text }
func (s *textSurface) SetText(t string) { s.text = t }

type markupSurface struct {
	textSurface
	markup string
}

func (s *markupSurface) SetMarkup(m string) { s.markup = m }

func TestTypesetMarkupSurface(t *testing.T) {
	b := New()
	require.NoError(t, b.Configure(compose.DefaultDelimiters()))

	s := &markupSurface{textSurface: textSurface{text: "a < b: $$x^{2}$$"}}
	require.NoError(t, b.Typeset(context.Background(), s))

	assert.Equal(t, "a < b: $$x^{2}$$", s.text, "source text is kept")
	assert.Contains(t, s.markup, "a &lt; b: ")
	assert.Contains(t, s.markup, "<math")
	assert.Contains(t, s.markup, xmlns)
	assert.NotContains(t, s.markup, "$$")
}

func TestTypesetTextSurface(t *testing.T) {
	b := New()
	require.NoError(t, b.Configure(compose.Delimiters{Open: `\(`, Close: `\)`}))

	s := &textSurface{text: `\(\alpha\)`}
	require.NoError(t, b.Typeset(context.Background(), s))
	assert.Contains(t, s.text, "<math")
	assert.NotContains(t, s.text, `\(`)
}

func TestTypesetTextSurfaceTwice(t *testing.T) {
	b := New()
	require.NoError(t, b.Configure(compose.DefaultDelimiters()))

	s := &textSurface{text: "$$x^{2}$$"}
	require.NoError(t, b.Typeset(context.Background(), s))
	first := s.text
	require.NoError(t, b.Typeset(context.Background(), s))

	assert.Equal(t, first, s.text)
	assert.NotContains(t, s.text, "&lt;math")
}

func TestConfigure(t *testing.T) {
	b := New()
	assert.Equal(t, Name, b.Name())
	assert.True(t, fault.IsConfiguration(b.Typeset(context.Background(), &textSurface{})))

	require.NoError(t, b.Configure(compose.DefaultDelimiters()))
	err := b.Configure(compose.Delimiters{Open: "$", Close: "$"})
	assert.True(t, fault.IsConfiguration(err))
}

func TestMarkupPlainOnly(t *testing.T) {
	got, err := New().Markup("x & y", compose.DefaultDelimiters())
	require.NoError(t, err)
	assert.Equal(t, "x &amp; y", got)
}
