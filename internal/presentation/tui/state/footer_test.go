package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/latexpad/internal/application/settings"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		statusMessage string
		helpText      string
		want          string
	}{
		{
			name:     "help only without status",
			helpText: "help",
			want:     "help",
		},
		{
			name:          "status prepended",
			statusMessage: "Copied formula",
			helpText:      "help",
			want:          "Copied formula\nhelp",
		},
		{
			name:          "error wins over status",
			err:           errors.New("boom"),
			statusMessage: "Copied formula",
			helpText:      "help",
			want:          "Error: boom\nhelp",
		},
		{
			name:          "status only when help empty",
			statusMessage: "Copied formula",
			want:          "Copied formula",
		},
		{
			name:          "blank status ignored",
			statusMessage: "   ",
			helpText:      "help",
			want:          "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.err, tt.statusMessage, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFooterHelpText_OneLine(t *testing.T) {
	keys := NewKeyMap(settings.Default().KeyMap)

	got := FooterHelpText(help.New(), keys)
	if strings.Contains(got, "\n") {
		t.Fatalf("FooterHelpText() should be one line, got %q", got)
	}
	if !strings.Contains(got, "insert") {
		t.Fatalf("FooterHelpText() = %q, want the insert binding", got)
	}
}

func TestNewKeyMap_Space(t *testing.T) {
	keys := NewKeyMap(settings.Default().KeyMap)

	if !key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys.Insert) {
		t.Fatal("space should match the insert binding")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Insert) {
		t.Fatal("enter should match the insert binding")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlN}, keys.NextGroup) {
		t.Fatal("ctrl+n should match the next category binding")
	}
}

func TestSplitKeys(t *testing.T) {
	got := splitKeys("k, up,,space,pgdn")
	want := []string{"k", "up", " ", "pgdown", "pgdn"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("splitKeys() = %q, want %q", got, want)
	}
}
