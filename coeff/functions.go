package coeff

import (
	"math"
	"math/big"
)

// Pow returns c^n for a scalar coefficient.
//
// Errors:
//   - ErrDivisionByZero for a negative power of zero.
//   - ErrInexact for a negative power of an Integer other than ±1.
//   - ErrKindMismatch for non-scalar kinds.
//
// Complexity: O(log|n|) multiplications.
func Pow(c Coefficient, n int) (Coefficient, error) {
	switch x := c.(type) {
	case *Double:
		if n < 0 && x.v == 0 {
			return nil, coeffErrorf("Pow", x, ErrDivisionByZero)
		}
		return NewDouble(math.Pow(x.v, float64(n))), nil
	case *Integer:
		if n < 0 {
			if x.v.Sign() == 0 {
				return nil, coeffErrorf("Pow", x, ErrDivisionByZero)
			}
			if x.v.CmpAbs(big.NewInt(1)) != 0 {
				return nil, coeffErrorf("Pow", x, ErrInexact)
			}
			n = -n
		}
		out := &Integer{}
		out.v.Exp(&x.v, big.NewInt(int64(n)), nil)
		return out, nil
	case *Rational:
		base := new(big.Rat).Set(&x.v)
		if n < 0 {
			if base.Sign() == 0 {
				return nil, coeffErrorf("Pow", x, ErrDivisionByZero)
			}
			base.Inv(base)
			n = -n
		}
		e := big.NewInt(int64(n))
		num := new(big.Int).Exp(base.Num(), e, nil)
		den := new(big.Int).Exp(base.Denom(), e, nil)
		out := &Rational{}
		out.v.SetFrac(num, den)
		return out, nil
	}

	return nil, coeffErrorf("Pow", c.Kind(), ErrKindMismatch)
}

// Root returns the principal n-th root of c.
// Exact kinds require a perfect power (ErrInexact otherwise).
//
// Errors:
//   - ErrDomain when n <= 0 or when n is even and c is negative.
//   - ErrInexact when an exact root does not exist.
func Root(c Coefficient, n int) (Coefficient, error) {
	if n <= 0 {
		return nil, coeffErrorf("Root", n, ErrDomain)
	}
	switch x := c.(type) {
	case *Double:
		if x.v < 0 && n%2 == 0 {
			return nil, coeffErrorf("Root", x, ErrDomain)
		}
		r := math.Pow(math.Abs(x.v), 1/float64(n))
		if x.v < 0 {
			r = -r
		}
		return NewDouble(r), nil
	case *Integer:
		r, err := intRoot(&x.v, n)
		if err != nil {
			return nil, err
		}
		return IntegerFromBig(r), nil
	case *Rational:
		num, err := intRoot(x.v.Num(), n)
		if err != nil {
			return nil, err
		}
		den, err := intRoot(x.v.Denom(), n)
		if err != nil {
			return nil, err
		}
		return RationalFromBig(new(big.Rat).SetFrac(num, den)), nil
	}

	return nil, coeffErrorf("Root", c.Kind(), ErrKindMismatch)
}

// intRoot returns the exact n-th root of v (bisection on |v|).
func intRoot(v *big.Int, n int) (*big.Int, error) {
	if v.Sign() < 0 && n%2 == 0 {
		return nil, coeffErrorf("Root", v, ErrDomain)
	}
	a := new(big.Int).Abs(v)
	if n == 2 {
		r := new(big.Int).Sqrt(a)
		if new(big.Int).Mul(r, r).Cmp(a) != 0 {
			return nil, coeffErrorf("Root", v, ErrInexact)
		}
		return r, nil
	}

	e := big.NewInt(int64(n))
	lo, hi := big.NewInt(0), new(big.Int).Add(a, big.NewInt(1))
	one := big.NewInt(1)
	for new(big.Int).Sub(hi, lo).Cmp(one) > 0 {
		mid := new(big.Int).Rsh(new(big.Int).Add(lo, hi), 1)
		if new(big.Int).Exp(mid, e, nil).Cmp(a) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	if new(big.Int).Exp(lo, e, nil).Cmp(a) != 0 {
		return nil, coeffErrorf("Root", v, ErrInexact)
	}
	if v.Sign() < 0 {
		lo.Neg(lo)
	}

	return lo, nil
}

// Factorial returns n! as an Integer.
//
// Errors:
//   - ErrDomain for n < 0.
func Factorial(n int64) (*Integer, error) {
	if n < 0 {
		return nil, coeffErrorf("Factorial", n, ErrDomain)
	}
	out := &Integer{}
	out.v.MulRange(1, n)

	return out, nil
}

// Binomial returns C(n, k) as an Integer (0 when k is outside [0, n]).
func Binomial(n, k int64) (*Integer, error) {
	if n < 0 {
		return nil, coeffErrorf("Binomial", n, ErrDomain)
	}
	out := &Integer{}
	if k < 0 || k > n {
		return out, nil
	}
	out.v.Binomial(n, k)

	return out, nil
}
