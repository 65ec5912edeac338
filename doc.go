// Package lvseries multiplies sparse multivariate series: polynomials,
// Fourier series and Poisson series (Fourier series whose coefficients are
// polynomials), the workhorse objects of perturbation theory.
//
// What is in the box?
//
//	• Keys: monomial exponent vectors and cos/sin frequency vectors,
//	  with Werner's product-to-sum formulas for the trigonometric case
//	• Coefficients: float64, exact big integers and rationals, and nested
//	  polynomials for Poisson series
//	• Kronecker coding: exponent vectors packed into a single integer when
//	  the product ranges allow it, with dense-array or hash accumulation
//	• Truncation: total degree, partial degree and coefficient norm, with
//	  early loop exit over pre-sorted operands
//	• Parallel multiplication with context cancellation
//	• Text and JSON readers/writers and an `lvseries` command line tool
//
// Packages:
//
//	key/      : monomial and trigonometric keys, products, Kronecker coding
//	coeff/    : coefficient kinds and exact arithmetic helpers
//	symbol/   : symbol table and per-slot argument layouts
//	truncate/ : truncation policies bound to a series layout
//	series/   : the Series container, arithmetic, Multiply and Pow
//	seriesio/ : text and JSON formats
//	cmd/lvseries : CLI with mul, pow, info, spectrum and bench
//
// Quick example, (1+x)·(1+x+x²+x³) truncated below degree 3:
//
//	1|0 + 2|1 + 2|2
//
// See examples/ for runnable programs.
//
//	go install github.com/katalvlaran/lvseries/cmd/lvseries@latest
package lvseries
