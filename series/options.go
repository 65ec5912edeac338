// SPDX-License-Identifier: MIT

// Package series: functional configuration for series containers and for the
// multiplier. This file defines:
//   - Option / MulOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gather helpers that resolve the effective configuration.
//
// Design goals:
//   - Deterministic results: options tune performance only, never the term set
//     (Threads and Algorithm change the order of floating-point additions, nothing else).
//   - No global state: truncation is an explicit truncate.Policy argument.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package series

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvseries/coeff"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the numerical zero for Double coefficients.
	DefaultTolerance = coeff.DefaultTolerance

	// DefaultThreads is the number of multiplication workers.
	DefaultThreads = 1

	// DefaultMemoryLimit caps the dense accumulator of vector-coded
	// multiplication (bytes). The effective budget is the smaller of this
	// value and a quarter of the currently available memory.
	DefaultMemoryLimit = int64(512 << 20)

	// denseCellBytes is the accounted size of one dense accumulator slot.
	denseCellBytes = 16
)

// Algorithm selects the multiplication strategy.
type Algorithm uint8

const (
	// Automatic tries vector-coded, then hash-coded, then plain multiplication.
	Automatic Algorithm = iota

	// Plain forces the O(n·m) multiplication with hashed accumulation.
	Plain

	// VectorCoded requests Kronecker coding with a dense accumulator.
	// Falls back to HashCoded when the array exceeds the memory budget and to
	// Plain when coding is not viable.
	VectorCoded

	// HashCoded requests Kronecker coding with a hash-map accumulator.
	// Falls back to Plain when coding is not viable.
	HashCoded
)

// String names the algorithm as in configuration files.
func (a Algorithm) String() string {
	switch a {
	case Automatic:
		return "automatic"
	case Plain:
		return "plain"
	case VectorCoded:
		return "vector_coded"
	case HashCoded:
		return "hash_coded"
	default:
		return "unknown"
	}
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, bool) {
	for _, a := range []Algorithm{Automatic, Plain, VectorCoded, HashCoded} {
		if a.String() == s {
			return a, true
		}
	}

	return Automatic, false
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "series: WithTolerance: tolerance must be finite, non-negative"
	panicThreadsInvalid   = "series: WithThreads: threads must be >= 1"
	panicMemoryInvalid    = "series: WithMemoryLimit: limit must be >= 0"
	panicAlgorithmInvalid = "series: WithAlgorithm: unknown algorithm"
	panicInnerInvalid     = "series: WithInnerKind: nested coefficients hold scalar kinds only"
)

// ---------- Series options ----------

// Option configures a Series at construction.
type Option func(*options)

type options struct {
	tol   float64
	log   logr.Logger
	inner coeff.Kind
}

func defaultOptions() options {
	return options{tol: DefaultTolerance, log: logr.Discard(), inner: coeff.KindDouble}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTolerance sets the numerical zero used to erase Double terms.
// Panics if tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithInnerKind sets the scalar kind of nested polynomial coefficients.
// Panics if k is itself coeff.KindNested.
func WithInnerKind(k coeff.Kind) Option {
	if k >= coeff.KindNested {
		panic(panicInnerInvalid)
	}

	return func(o *options) { o.inner = k }
}

// WithLogger attaches a logger to the series (used by layout changes and diagnostics).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// ---------- Multiplication options ----------

// MulOption configures one multiplication.
type MulOption func(*mulOptions)

type mulOptions struct {
	algorithm Algorithm
	threads   int
	memLimit  int64 // 0 ⇒ probe available memory
	log       logr.Logger
	logSet    bool
}

func gatherMulOptions(opts []MulOption) mulOptions {
	o := mulOptions{algorithm: Automatic, threads: DefaultThreads, log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAlgorithm forces a multiplication strategy (Automatic by default).
func WithAlgorithm(a Algorithm) MulOption {
	if a > HashCoded {
		panic(panicAlgorithmInvalid)
	}

	return func(o *mulOptions) { o.algorithm = a }
}

// WithThreads sets the number of workers for the outer multiplication loop.
// It is a resource hint: every value yields the same term set.
func WithThreads(n int) MulOption {
	if n < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *mulOptions) { o.threads = n }
}

// WithMemoryLimit caps the dense accumulator size in bytes (0 ⇒ automatic).
func WithMemoryLimit(bytes int64) MulOption {
	if bytes < 0 {
		panic(panicMemoryInvalid)
	}

	return func(o *mulOptions) { o.memLimit = bytes }
}

// WithMulLogger sets the logger for path selection and fallbacks.
// By default the logger of the left operand is used.
func WithMulLogger(l logr.Logger) MulOption {
	return func(o *mulOptions) { o.log, o.logSet = l, true }
}
