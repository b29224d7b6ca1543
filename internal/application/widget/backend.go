package widget

import (
	"context"

	"github.com/tesso57/latexpad/internal/domain/compose"
)

// Backend typesets delimited math found in a surface.
type Backend interface {
	Name() string
	// Configure sets the delimiter pair recognized as math. It is called once
	// per widget; a backend already bound to another pair must refuse.
	Configure(compose.Delimiters) error
	// Typeset renders the math in s in place. Repeated calls are safe.
	Typeset(ctx context.Context, s Surface) error
}
