package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tesso57/latexpad/internal/application/settings"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		json     bool
		wantText string
	}{
		{name: "console output", json: false, wantText: "widget ready"},
		{name: "JSON output", json: true, wantText: `"msg":"widget ready"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "latexpad.log")
			if err := Initialize(settings.LogConfig{File: path, Level: "debug", JSON: tt.json}); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			t.Cleanup(func() { _ = Initialize(settings.LogConfig{}) })

			Logger.Debugw("widget ready", "categories", 8)
			Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if !strings.Contains(string(data), tt.wantText) {
				t.Fatalf("log = %q, want %q", data, tt.wantText)
			}
		})
	}
}

func TestInitializeDisabled(t *testing.T) {
	if err := Initialize(settings.LogConfig{Level: "not-a-level"}); err != nil {
		t.Fatalf("empty file should disable logging without validating the level: %v", err)
	}
	Logger.Infow("dropped")
}

func TestInitializeBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latexpad.log")
	if err := Initialize(settings.LogConfig{File: path, Level: "loud"}); err == nil {
		t.Fatal("Initialize() should reject an unknown level")
	}
}
