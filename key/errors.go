// SPDX-License-Identifier: MIT
// Package key: sentinel error set.
// Every message is prefixed with "key: ..."; callers match with errors.Is.

package key

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a malformed key string (empty input, bad integer, bad flavour).
	ErrParse = errors.New("key: parse error")

	// ErrKindMismatch indicates an operation combined a Monomial with a Trig key.
	ErrKindMismatch = errors.New("key: kind mismatch")

	// ErrOverflow indicates that a Kronecker coding cannot be represented in the
	// fast integer range. It is a signal for callers to fall back, not a user error.
	ErrOverflow = errors.New("key: coding overflow")

	// ErrBadRange indicates a coding range whose minimum exceeds its maximum,
	// or mismatched range vector lengths.
	ErrBadRange = errors.New("key: invalid coding range")
)

// keyErrorf wraps err with the operation name and the offending input.
func keyErrorf(op, input string, err error) error {
	return fmt.Errorf("key.%s(%q): %w", op, input, err)
}
