// Package symbol holds the named variables a series is expressed in.
//
// A Symbol is an immutable (name, time-evaluation polynomial) pair. Table is an
// explicit, concurrency-safe registry that guarantees one Symbol per name; it
// replaces an implicit process-wide registry, so callers decide its lifetime
// and pass it to whatever needs symbol metadata.
//
// Arguments describes the layout of a series: one ordered slot of symbols per
// echelon level (Poly for monomial exponents, Trig for trigonometric
// frequencies). The width of every key in a series is bounded by the length
// of the slot that governs it.
package symbol
