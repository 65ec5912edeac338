// SPDX-License-Identifier: MIT
// Package seriesio: sentinel error set and the per-line diagnostic type.

package seriesio

import (
	"errors"
	"fmt"
)

var (
	// ErrDirective indicates a malformed or misplaced "@" directive.
	// Directives fix the series layout, so this error aborts the read.
	ErrDirective = errors.New("seriesio: malformed directive")

	// ErrTermLine indicates a malformed term line. Such lines are skipped and
	// reported through LineError; they never abort a read.
	ErrTermLine = errors.New("seriesio: malformed term line")

	// ErrJSON indicates a JSON document that does not describe a series.
	ErrJSON = errors.New("seriesio: invalid JSON series")
)

// LineError reports one skipped input line.
type LineError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the raw line.
	Text string

	// Err is the cause; errors.Is(err, ErrTermLine) holds for every LineError.
	Err error
}

// Error implements error.
func (e LineError) Error() string {
	return fmt.Sprintf("seriesio: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e LineError) Unwrap() error { return e.Err }

func ioErrorf(op, detail string, err error) error {
	return fmt.Errorf("seriesio.%s(%s): %w", op, detail, err)
}
