package settings

import (
	"testing"

	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Labels) != len(catalog.DefaultGroups()) {
		t.Fatalf("len(Labels) = %d, want %d", len(cfg.Labels), len(catalog.DefaultGroups()))
	}
	if cfg.Backend != "unicode" {
		t.Fatalf("Backend = %q, want unicode", cfg.Backend)
	}
	if cfg.KeyMap.Quit != "ctrl+c,esc" {
		t.Fatalf("KeyMap.Quit = %q", cfg.KeyMap.Quit)
	}
}

func TestEffectiveDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   DelimiterConfig
		want compose.Delimiters
	}{
		{name: "unset", in: DelimiterConfig{}, want: compose.DefaultDelimiters()},
		{name: "custom", in: DelimiterConfig{Open: "\\[", Close: "\\]"}, want: compose.Delimiters{Open: "\\[", Close: "\\]"}},
		{name: "open only", in: DelimiterConfig{Open: "$"}, want: compose.Delimiters{Open: "$"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settings{Delimiters: tt.in}.EffectiveDelimiters()
			if got != tt.want {
				t.Fatalf("EffectiveDelimiters() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
