// Package coeff defines the numeric coefficients of series terms.
//
// Every coefficient satisfies the Coefficient capability interface. Three scalar
// variants live here:
//
//	Double  : float64; ignorable when |x| <= tolerance.
//	Integer : arbitrary-precision integer (math/big.Int); exact.
//	Rational: arbitrary-precision rational (math/big.Rat); exact.
//
// A fourth variant, a polynomial series used as the coefficient of a Poisson
// series, lives in package series (series.Nested) because it needs the series
// multiplier. Composite coefficients receive that multiplier through the Env
// argument of Mul and AddProduct; scalar variants ignore it.
//
// Coefficients are mutable accumulators: AddAssign, SubAssign, Negate and
// AddProduct update the receiver in place. Operands of different kinds are a
// programmer error; series validate kinds before any arithmetic happens.
package coeff
