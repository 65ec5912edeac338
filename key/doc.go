// Package key implements the monomial keys of a sparse series.
//
// A key is the non-coefficient half of a term. Two variants exist:
//
//   - Monomial: a vector of integer exponents over the polynomial argument slot;
//     the product of two monomials is their elementwise sum.
//   - Trig: a vector of integer frequencies over the trigonometric argument slot,
//     plus a flavour (cosine or sine). The product of two trig keys yields two
//     keys through Werner's product-to-sum formulas:
//
//     cos α·cos β = ½cos(α−β) + ½cos(α+β)
//     sin α·sin β = ½cos(α−β) − ½cos(α+β)
//     sin α·cos β = ½sin(α−β) + ½sin(α+β)
//     cos α·sin β = −½sin(α−β) + ½sin(α+β)
//
// Keys are immutable values. A key may be narrower than the argument slot that
// governs it; missing trailing positions are implicitly zero and Pad makes them
// explicit. Equality, hashing and ordering all treat trailing zeros as absent,
// so a key and its padded copy are interchangeable.
//
// Kronecker coding (Coding) maps bounded keys bijectively to int64 codes through a
// mixed-radix positional system; the series multiplier uses it to replace
// key arithmetic with integer arithmetic.
//
// String form: "e0;e1;...;en-1" for monomials, "e0;...;en-1;c" (or ";s") for trig keys.
package key
