// Package delim holds the delimiter handling shared by the typesetting
// backends.
package delim

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// Binding records the delimiter pair a backend instance was configured with.
// The zero value is unbound.
type Binding struct {
	mu    sync.RWMutex
	pair  compose.Delimiters
	bound bool
}

// Bind attaches d to the binding. Binding the same pair again is a no-op;
// a different pair is rejected.
func (b *Binding) Bind(d compose.Delimiters) error {
	if d.Open == "" || d.Close == "" {
		return errors.WithHint(
			fault.Configuration("delimiters %q/%q: both sides must be non-empty", d.Open, d.Close),
			"set delimiters.open and delimiters.close",
		)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bound {
		if b.pair == d {
			return nil
		}
		return errors.WithHintf(
			fault.Configuration("backend bound to %q/%q, cannot rebind to %q/%q",
				b.pair.Open, b.pair.Close, d.Open, d.Close),
			"create a separate backend per delimiter pair",
		)
	}
	b.pair = d
	b.bound = true
	return nil
}

// Pair returns the bound pair and whether one is bound.
func (b *Binding) Pair() (compose.Delimiters, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pair, b.bound
}

// Segment is a run of surface text, either plain or math.
type Segment struct {
	Math bool
	Text string
}

// Split cuts text into plain and math segments. Math segments carry the
// content between the delimiters, without them. An opening delimiter with
// no matching close is kept as plain text.
func Split(text string, d compose.Delimiters) []Segment {
	var out []Segment
	if d.Open == "" || d.Close == "" {
		if text != "" {
			out = append(out, Segment{Text: text})
		}
		return out
	}
	plain := func(s string) {
		if s == "" {
			return
		}
		if n := len(out); n > 0 && !out[n-1].Math {
			out[n-1].Text += s
			return
		}
		out = append(out, Segment{Text: s})
	}
	rest := text
	for rest != "" {
		start := strings.Index(rest, d.Open)
		if start < 0 {
			break
		}
		body := rest[start+len(d.Open):]
		end := strings.Index(body, d.Close)
		if end < 0 {
			break
		}
		plain(rest[:start])
		out = append(out, Segment{Math: true, Text: body[:end]})
		rest = body[end+len(d.Close):]
	}
	plain(rest)
	return out
}
