package textutil

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSingleLine(t *testing.T) {
	if got := SingleLine("a\n  b\tc"); got != "a b c" {
		t.Fatalf("SingleLine() = %q", got)
	}
	if got := SingleLine(""); got != "" {
		t.Fatalf("SingleLine(empty) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 0); got != "" {
		t.Fatalf("Truncate(width 0) = %q", got)
	}
	if got := Truncate("abc", 5); got != "abc" {
		t.Fatalf("Truncate(short) = %q", got)
	}
	if got := Truncate("abcdef", 4); ansi.StringWidth(got) != 4 {
		t.Fatalf("Truncate() = %q, want width 4", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		text  string
		width int
	}{
		{text: "α", width: 4},
		{text: "⟹", width: 3},
		{text: "lim_(x→0)f(x)", width: 6},
		{text: "", width: 2},
	}
	for _, tt := range tests {
		if got := Pad(tt.text, tt.width); ansi.StringWidth(got) != tt.width {
			t.Errorf("Pad(%q, %d) = %q, width %d", tt.text, tt.width, got, ansi.StringWidth(got))
		}
	}
}
