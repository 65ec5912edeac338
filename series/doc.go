// Package series implements sparse multivariate series and their multiplication.
//
// A Series is a set of terms (coefficient, key) of one key kind
// (key.KindMonomial for polynomials, key.KindTrig for trigonometric and
// Poisson series) and one coefficient kind (coeff.KindDouble, KindInteger,
// KindRational, or KindNested for Poisson series whose coefficients are
// polynomials, see Nested). Keys are laid out against a symbol.Arguments
// value; the series width is the length of the argument slot governing its keys.
//
// Containers:
//
//	s := series.New(key.KindMonomial, coeff.KindRational, args)
//	_ = s.Insert(series.Term{Key: key.NewMonomial(1, 0), Coeff: coeff.NewRational(1, 2)})
//
// Multiplication:
//
//	p, err := series.Multiply(ctx, a, b, truncate.ByDegree(10),
//	    series.WithThreads(4), series.WithAlgorithm(series.Automatic))
//
// The multiplier chooses between Kronecker-coded accumulation (dense array or
// hash map keyed by integer codes) and plain accumulation by full keys; every
// choice, thread count and memory limit produces the same term set.
//
// Errors are sentinel values (ErrKeyTooWide, ErrKeyKind, ...) wrapped with the
// failing method; test with errors.Is. Logging goes through logr (WithLogger,
// WithMulLogger); the library never prints.
package series
