// SPDX-License-Identifier: MIT
// Package series: sentinel error set.
// Every message is prefixed with "series: ..."; callers match with errors.Is.
// Coded-multiplication overflow is handled internally (fallback to the plain
// path) and never surfaces through these sentinels.

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyTooWide indicates a key with more positions than the governing
	// argument slot declares. Keys are never silently truncated.
	ErrKeyTooWide = errors.New("series: key wider than declared arguments")

	// ErrKeyKind indicates a key of the wrong variant, or operands with
	// different key kinds.
	ErrKeyKind = errors.New("series: key kind mismatch")

	// ErrCoefficientKind indicates a coefficient of the wrong variant, or
	// operands with different coefficient kinds.
	ErrCoefficientKind = errors.New("series: coefficient kind mismatch")

	// ErrUnknownSymbol indicates a symbol name absent from the series arguments.
	ErrUnknownSymbol = errors.New("series: unknown symbol")

	// ErrNegativePower indicates Pow with a negative exponent.
	ErrNegativePower = errors.New("series: negative power")

	// ErrNotConstant indicates an operation that requires a constant series.
	ErrNotConstant = errors.New("series: series is not constant")
)

// seriesErrorf wraps err with the method name and a detail string.
func seriesErrorf(method, detail string, err error) error {
	return fmt.Errorf("series.%s(%s): %w", method, detail, err)
}
