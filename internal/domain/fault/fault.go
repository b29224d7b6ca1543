// Package fault defines the error taxonomy shared by the composer and its hosts.
//
// Every error returned by a failing operation is marked with one of the
// sentinels below, so callers branch with errors.Is regardless of how much
// context was wrapped around it.
package fault

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrConfiguration marks malformed construction input.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound marks a display region that could not be resolved.
	ErrNotFound = errors.New("not found")

	// ErrRange marks a category index outside the catalog.
	ErrRange = errors.New("index out of range")
)

// Configuration returns a new error marked as ErrConfiguration.
func Configuration(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

// NotFound returns a new error marked as ErrNotFound.
func NotFound(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// Range returns a new error marked as ErrRange.
func Range(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrRange)
}

// IsConfiguration reports whether err is or wraps a configuration error.
func IsConfiguration(err error) bool {
	return err != nil && errors.Is(err, ErrConfiguration)
}

// IsNotFound reports whether err is or wraps a not-found error.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsRange reports whether err is or wraps a range error.
func IsRange(err error) bool {
	return err != nil && errors.Is(err, ErrRange)
}

// Hints returns the user-facing hints attached to err, flattened.
func Hints(err error) string {
	return errors.FlattenHints(err)
}
