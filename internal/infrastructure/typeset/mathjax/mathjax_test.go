package mathjax

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

type markedSurface struct {
	text  string
	marks map[string]string
}

func (s *markedSurface) Text() string     { return s.text }
func (s *markedSurface) SetText(t string) { s.text = t }
func (s *markedSurface) Mark(k, v string) {
	if s.marks == nil {
		s.marks = map[string]string{}
	}
	s.marks[k] = v
}

func TestConfigScript(t *testing.T) {
	b := New()
	_, err := b.ConfigScript()
	assert.True(t, fault.IsConfiguration(err))

	require.NoError(t, b.Configure(compose.Delimiters{Open: `\[`, Close: `\]`}))
	script, err := b.ConfigScript()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(script, `<script type="text/x-mathjax-config">`))
	assert.Contains(t, script, `"displayMath":[["\\[","\\]"]]`)
	assert.Contains(t, script, `"processEnvironments":true`)

	head, err := b.HeadHTML()
	require.NoError(t, err)
	assert.Contains(t, head, Loader)
}

func TestTypesetLeavesText(t *testing.T) {
	b := New()
	require.NoError(t, b.Configure(compose.DefaultDelimiters()))
	assert.True(t, fault.IsConfiguration(b.Configure(compose.Delimiters{Open: "$", Close: "$"})))

	s := &markedSurface{text: `$$\alpha$$`}
	require.NoError(t, b.Typeset(context.Background(), s))
	require.NoError(t, b.Typeset(context.Background(), s))
	assert.Equal(t, `$$\alpha$$`, s.text)
	assert.Equal(t, "typeset", s.marks[MarkAttr])
}
