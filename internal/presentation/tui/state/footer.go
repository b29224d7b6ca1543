package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: an error or status line above the
// help text.
func FooterText(err error, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if err != nil {
		status = "Error: " + err.Error()
	}
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help for keys.
func FooterHelpText(h help.Model, keys KeyMap) string {
	h.ShowAll = false
	return h.View(&keys)
}
