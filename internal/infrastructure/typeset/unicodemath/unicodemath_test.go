package unicodemath

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

type surface struct{ text string }

func (s *surface) Text() string     { return s.text }
func (s *surface) SetText(t string) { s.text = t }

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "Greek", src: `\alpha`, want: "α"},
		{name: "GreekSequence", src: `\alpha\beta\Gamma`, want: "αβΓ"},
		{name: "Relation", src: `a \leq b`, want: "a≤b"},
		{name: "Arrow", src: `\Rightarrow`, want: "⇒"},
		{name: "Superscript", src: `x^{2}`, want: "x²"},
		{name: "SuperscriptBare", src: `x^2`, want: "x²"},
		{name: "Subscript", src: `a_{1}`, want: "a₁"},
		{name: "UnmappedSubscript", src: `a_{c}`, want: "a_c"},
		{name: "LongUnmappedScript", src: `e^{\alpha t}`, want: "e^(αt)"},
		{name: "Fraction", src: `\frac{1}{2}`, want: "1/2"},
		{name: "FractionGroups", src: `\frac{a+b}{c}`, want: "(a+b)/c"},
		{name: "Sqrt", src: `\sqrt{x}`, want: "√x"},
		{name: "CubeRoot", src: `\sqrt[3]{x}`, want: "∛x"},
		{name: "Blackboard", src: `\mathbb{R}`, want: "ℝ"},
		{name: "BlackboardRegular", src: `\mathbb{A}`, want: "𝔸"},
		{name: "Calligraphic", src: `\mathcal{L}`, want: "ℒ"},
		{name: "Fraktur", src: `\mathfrak{a}`, want: "𝔞"},
		{name: "Bold", src: `\mathbf{x}`, want: "𝐱"},
		{name: "Accent", src: `\hat{a}`, want: "a\u0302"},
		{name: "Vector", src: `\vec{v}`, want: "v\u20d7"},
		{name: "Unknown", src: `\foo`, want: `\foo`},
		{name: "UnknownWithKnown", src: `\foo+\alpha`, want: `\foo+α`},
		{name: "Text", src: `\text{if } x > 0`, want: "if x>0"},
		{name: "TextKeepsSpaces", src: `\text{hello world}`, want: "hello world"},
		{name: "Matrix", src: "\\begin{matrix}\n1 & 2 \\\\\n3 & 4\n\\end{matrix}", want: "1 2; 3 4"},
		{name: "PMatrix", src: "\\begin{pmatrix}\n1 & 2 \\\\\n3 & 4\n\\end{pmatrix}", want: "(1 2; 3 4)"},
		{name: "Cases", src: "\\begin{cases}\nx=2 \\\\\ny=3\n\\end{cases}", want: "{x=2; y=3"},
		{name: "LeftRight", src: `\left( x \right)`, want: "(x)"},
		{name: "Spacing", src: `a\,b\!c`, want: "a bc"},
		{name: "Empty", src: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.src); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestScannerMatchesParser(t *testing.T) {
	for _, src := range []string{`\alpha`, `x^{2}`, `\frac{1}{2}`, `\mathbb{R}`, `a_{1}`} {
		got := tidy(join(newScanner(src).list(eof)))
		assert.Equal(t, Convert(src), got, "scanner output for %q", src)
	}
}

func TestConvertFunctions(t *testing.T) {
	assert.Equal(t, "sin x", tidy(join(newScanner(`\sin{x}`).list(eof))))
	assert.Contains(t, Convert(`\lim_{x \to 0}f(x)`), "lim")
	assert.Contains(t, Convert(`\lim_{x \to 0}f(x)`), "→")
}

func TestConvertCatalog(t *testing.T) {
	// Every reference snippet converts without panicking, and the glyph
	// commands of the Greek category all resolve.
	for _, group := range catalog.DefaultGroups() {
		for _, snippet := range group {
			_ = Convert(snippet)
		}
	}
	for _, snippet := range catalog.DefaultGroups()[4] {
		got := Convert(snippet)
		assert.NotContains(t, got, `\`, "snippet %q", snippet)
	}
}

func TestBackendTypeset(t *testing.T) {
	b := New()
	assert.Equal(t, Name, b.Name())

	s := &surface{text: `$$\alpha$$`}
	err := b.Typeset(context.Background(), s)
	assert.True(t, fault.IsConfiguration(err), "typeset before configure: %v", err)

	require.NoError(t, b.Configure(compose.DefaultDelimiters()))
	require.NoError(t, b.Configure(compose.DefaultDelimiters()))
	assert.True(t, fault.IsConfiguration(b.Configure(compose.Delimiters{Open: `\(`, Close: `\)`})))

	s.text = `see $$\alpha+\beta$$ and $$x^{2}$$`
	require.NoError(t, b.Typeset(context.Background(), s))
	assert.Equal(t, "see α+β and x²", s.text)

	// A second pass finds no delimiters and leaves the text alone.
	require.NoError(t, b.Typeset(context.Background(), s))
	assert.Equal(t, "see α+β and x²", s.text)
}

func TestBackendTypesetCanceled(t *testing.T) {
	b := New()
	require.NoError(t, b.Configure(compose.DefaultDelimiters()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &surface{text: `$$\alpha$$`}
	assert.ErrorIs(t, b.Typeset(ctx, s), context.Canceled)
	assert.Equal(t, `$$\alpha$$`, s.text)
}

func TestFormatCustomDelimiters(t *testing.T) {
	b := New()
	d := compose.Delimiters{Open: `\[`, Close: `\]`}
	got := b.Format(`\[\sum_{i} x_{i}\]`, d)
	assert.True(t, strings.HasPrefix(got, "∑"), "got %q", got)
	assert.Contains(t, got, "ᵢ")
}
