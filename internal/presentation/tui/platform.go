package tui

import "github.com/atotto/clipboard"

// clipboardWrite allows replacing the system clipboard in tests.
var clipboardWrite = clipboard.WriteAll
