package footer

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	if got := Render(Props{}); got != "" {
		t.Fatalf("Render(empty) = %q", got)
	}
	got := Render(Props{Text: "Copied formula\n? toggle help • ctrl+c quit", Width: 10})
	if w := lipgloss.Width(got); w > 10 {
		t.Fatalf("Render() width = %d, want <= 10: %q", w, got)
	}
	if lipgloss.Height(got) != 2 {
		t.Fatalf("Render() height = %d, want 2", lipgloss.Height(got))
	}
}
