// SPDX-License-Identifier: MIT
// Package coeff: sentinel error set.
// Every message is prefixed with "coeff: ..."; callers match with errors.Is.

package coeff

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a malformed coefficient string.
	ErrParse = errors.New("coeff: parse error")

	// ErrDivisionByZero indicates division by an exactly-zero coefficient.
	ErrDivisionByZero = errors.New("coeff: division by zero")

	// ErrDomain indicates an argument outside the operation's domain
	// (factorial of a negative number, even root of a negative value, zeroth root).
	ErrDomain = errors.New("coeff: argument out of domain")

	// ErrInexact indicates that an exact type cannot represent the result
	// (e.g. halving an odd Integer, a non-perfect root).
	ErrInexact = errors.New("coeff: inexact result")

	// ErrKindMismatch indicates an unknown kind or mixing of kinds.
	ErrKindMismatch = errors.New("coeff: kind mismatch")
)

// coeffErrorf wraps err with operation and operand context.
func coeffErrorf(op string, operand interface{}, err error) error {
	return fmt.Errorf("coeff.%s(%v): %w", op, operand, err)
}
