package view

import (
	"strings"
	"testing"

	"github.com/tesso57/latexpad/internal/presentation/tui/components/editor"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/footer"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/modal"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/palette"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/preview"
	"github.com/tesso57/latexpad/internal/presentation/tui/components/selector"
)

func TestRender(t *testing.T) {
	p := Props{
		Tabs:    selector.Props{Labels: []string{"Greek Alphabet"}, Width: 80},
		Palette: palette.Props{Title: "Greek Alphabet", Labels: []string{"α"}, Columns: 2, Width: 40},
		Editor:  editor.Props{View: `\alpha`, Width: 30},
		Preview: preview.Props{Rendered: "α", Source: `$$\alpha$$`, Width: 30},
		Footer:  footer.Props{Text: "? toggle help"},
	}
	got := Render(p)
	for _, want := range []string{"Greek Alphabet", `\alpha`, `$$\alpha$$`, "? toggle help"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	p.Modal = modal.Props{Visible: true, Kind: modal.Quit, Body: "Quit latexpad? (y/n)", Width: 80, Height: 20}
	got = Render(p)
	if !strings.Contains(got, "Quit latexpad?") || strings.Contains(got, `$$\alpha$$`) {
		t.Errorf("modal should replace the layout, got %q", got)
	}
}
