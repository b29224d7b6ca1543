package htmlhost

import (
	_ "embed"
	"strings"
)

//go:embed page.html
var template string

// Template loads the built-in page, which defines every region under the
// default keys.
func Template() (*Page, error) {
	return Load(strings.NewReader(template))
}
