package coeff

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Integer is an arbitrary-precision integer coefficient.
type Integer struct {
	v big.Int
}

// NewInteger wraps n.
func NewInteger(n int64) *Integer {
	out := &Integer{}
	out.v.SetInt64(n)

	return out
}

// IntegerFromBig copies b.
func IntegerFromBig(b *big.Int) *Integer {
	out := &Integer{}
	out.v.Set(b)

	return out
}

// ParseInteger reads base-10 digits with an optional sign.
func ParseInteger(s string) (*Integer, error) {
	out := &Integer{}
	if _, ok := out.v.SetString(strings.TrimSpace(s), 10); !ok {
		return nil, coeffErrorf("ParseInteger", strconv.Quote(s), ErrParse)
	}

	return out, nil
}

// Big returns a copy of the value.
func (z *Integer) Big() *big.Int { return new(big.Int).Set(&z.v) }

// Kind implements Coefficient.
func (z *Integer) Kind() Kind { return KindInteger }

// Clone implements Coefficient.
func (z *Integer) Clone() Coefficient { return IntegerFromBig(&z.v) }

// Zero implements Coefficient.
func (z *Integer) Zero() Coefficient { return &Integer{} }

// IsZero implements Coefficient.
func (z *Integer) IsZero() bool { return z.v.Sign() == 0 }

// IsIgnorable implements Coefficient; exact zero only.
func (z *Integer) IsIgnorable(float64) bool { return z.v.Sign() == 0 }

// AddAssign implements Coefficient.
func (z *Integer) AddAssign(x Coefficient) { z.v.Add(&z.v, &x.(*Integer).v) }

// SubAssign implements Coefficient.
func (z *Integer) SubAssign(x Coefficient) { z.v.Sub(&z.v, &x.(*Integer).v) }

// Negate implements Coefficient.
func (z *Integer) Negate() { z.v.Neg(&z.v) }

// Mul implements Coefficient.
func (z *Integer) Mul(x Coefficient, _ Env) (Coefficient, error) {
	out := &Integer{}
	out.v.Mul(&z.v, &x.(*Integer).v)

	return out, nil
}

// AddProduct implements Coefficient.
func (z *Integer) AddProduct(a, b Coefficient, sign int, _ Env) error {
	var p big.Int
	p.Mul(&a.(*Integer).v, &b.(*Integer).v)
	if sign < 0 {
		z.v.Sub(&z.v, &p)
	} else {
		z.v.Add(&z.v, &p)
	}

	return nil
}

// DivInt implements Coefficient. The division must be exact.
func (z *Integer) DivInt(n int64) error {
	if n == 0 {
		return coeffErrorf("DivInt", z, ErrDivisionByZero)
	}
	var q, r big.Int
	q.QuoRem(&z.v, big.NewInt(n), &r)
	if r.Sign() != 0 {
		return coeffErrorf("DivInt", z.String()+"/"+strconv.FormatInt(n, 10), ErrInexact)
	}
	z.v.Set(&q)

	return nil
}

// Quo implements Coefficient. The division must be exact.
func (z *Integer) Quo(x Coefficient) (Coefficient, error) {
	y := &x.(*Integer).v
	if y.Sign() == 0 {
		return nil, coeffErrorf("Quo", z, ErrDivisionByZero)
	}
	out := &Integer{}
	var r big.Int
	out.v.QuoRem(&z.v, y, &r)
	if r.Sign() != 0 {
		return nil, coeffErrorf("Quo", z.String()+"/"+y.String(), ErrInexact)
	}

	return out, nil
}

// Norm implements Coefficient.
func (z *Integer) Norm() float64 {
	f, _ := new(big.Float).SetInt(&z.v).Float64()
	if f < 0 {
		return -f
	}

	return f
}

// Hash implements Coefficient.
func (z *Integer) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(z.v.Sign() + 1)})
	_, _ = d.Write(z.v.Bytes())

	return d.Sum64()
}

// Compare implements Coefficient.
func (z *Integer) Compare(x Coefficient) int { return z.v.Cmp(&x.(*Integer).v) }

// String implements Coefficient.
func (z *Integer) String() string { return z.v.String() }
