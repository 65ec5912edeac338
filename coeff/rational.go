package coeff

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Rational is an arbitrary-precision rational coefficient, always normalised.
type Rational struct {
	v big.Rat
}

// NewRational returns p/q. q must be non-zero (programmer error otherwise).
func NewRational(p, q int64) *Rational {
	if q == 0 {
		panic("coeff: NewRational: zero denominator")
	}
	out := &Rational{}
	out.v.SetFrac64(p, q)

	return out
}

// RationalFromBig copies r.
func RationalFromBig(r *big.Rat) *Rational {
	out := &Rational{}
	out.v.Set(r)

	return out
}

// RationalFromFloat converts f exactly.
//
// Errors:
//   - ErrDomain for NaN or ±Inf.
func RationalFromFloat(f float64) (*Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, coeffErrorf("RationalFromFloat", f, ErrDomain)
	}
	out := &Rational{}
	out.v.SetFloat64(f)

	return out, nil
}

// ParseRational reads "p/q", an integer or a finite decimal.
// A zero denominator is a parse error.
func ParseRational(s string) (*Rational, error) {
	t := strings.TrimSpace(s)
	if i := strings.IndexByte(t, '/'); i >= 0 {
		if d := strings.TrimSpace(t[i+1:]); d == "0" || strings.Trim(d, "+-0") == "" {
			return nil, coeffErrorf("ParseRational", strconv.Quote(s), ErrParse)
		}
	}
	out := &Rational{}
	if _, ok := out.v.SetString(t); !ok {
		return nil, coeffErrorf("ParseRational", strconv.Quote(s), ErrParse)
	}

	return out, nil
}

// Rat returns a copy of the value.
func (q *Rational) Rat() *big.Rat { return new(big.Rat).Set(&q.v) }

// Kind implements Coefficient.
func (q *Rational) Kind() Kind { return KindRational }

// Clone implements Coefficient.
func (q *Rational) Clone() Coefficient { return RationalFromBig(&q.v) }

// Zero implements Coefficient.
func (q *Rational) Zero() Coefficient { return &Rational{} }

// IsZero implements Coefficient.
func (q *Rational) IsZero() bool { return q.v.Sign() == 0 }

// IsIgnorable implements Coefficient; exact zero only.
func (q *Rational) IsIgnorable(float64) bool { return q.v.Sign() == 0 }

// AddAssign implements Coefficient.
func (q *Rational) AddAssign(x Coefficient) { q.v.Add(&q.v, &x.(*Rational).v) }

// SubAssign implements Coefficient.
func (q *Rational) SubAssign(x Coefficient) { q.v.Sub(&q.v, &x.(*Rational).v) }

// Negate implements Coefficient.
func (q *Rational) Negate() { q.v.Neg(&q.v) }

// Mul implements Coefficient.
func (q *Rational) Mul(x Coefficient, _ Env) (Coefficient, error) {
	out := &Rational{}
	out.v.Mul(&q.v, &x.(*Rational).v)

	return out, nil
}

// AddProduct implements Coefficient.
func (q *Rational) AddProduct(a, b Coefficient, sign int, _ Env) error {
	var p big.Rat
	p.Mul(&a.(*Rational).v, &b.(*Rational).v)
	if sign < 0 {
		q.v.Sub(&q.v, &p)
	} else {
		q.v.Add(&q.v, &p)
	}

	return nil
}

// DivInt implements Coefficient.
func (q *Rational) DivInt(n int64) error {
	if n == 0 {
		return coeffErrorf("DivInt", q, ErrDivisionByZero)
	}
	q.v.Quo(&q.v, new(big.Rat).SetInt64(n))

	return nil
}

// Quo implements Coefficient.
func (q *Rational) Quo(x Coefficient) (Coefficient, error) {
	y := &x.(*Rational).v
	if y.Sign() == 0 {
		return nil, coeffErrorf("Quo", q, ErrDivisionByZero)
	}
	out := &Rational{}
	out.v.Quo(&q.v, y)

	return out, nil
}

// Norm implements Coefficient.
func (q *Rational) Norm() float64 {
	f, _ := q.v.Float64()

	return math.Abs(f)
}

// Hash implements Coefficient (normalised form makes it canonical).
func (q *Rational) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(q.v.Sign() + 1)})
	_, _ = d.Write(q.v.Num().Bytes())
	_, _ = d.Write([]byte{'/'})
	_, _ = d.Write(q.v.Denom().Bytes())

	return d.Sum64()
}

// Compare implements Coefficient.
func (q *Rational) Compare(x Coefficient) int { return q.v.Cmp(&x.(*Rational).v) }

// String renders "p/q", or "p" for integers.
func (q *Rational) String() string { return q.v.RatString() }

// Decimal renders the value rounded half-away-from-zero to places decimals.
func (q *Rational) Decimal(places int32) string {
	num := decimal.NewFromBigInt(q.v.Num(), 0)
	den := decimal.NewFromBigInt(q.v.Denom(), 0)

	return num.DivRound(den, places).StringFixed(places)
}
