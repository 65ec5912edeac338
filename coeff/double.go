package coeff

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultTolerance is the numerical zero below which a Double is ignorable.
const DefaultTolerance = 1e-80

// Double is a float64 coefficient.
type Double struct {
	v float64
}

// NewDouble wraps f.
func NewDouble(f float64) *Double { return &Double{v: f} }

// ParseDouble reads strconv float syntax.
func ParseDouble(s string) (*Double, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, coeffErrorf("ParseDouble", strconv.Quote(s), ErrParse)
	}

	return &Double{v: f}, nil
}

// Float64 returns the value.
func (d *Double) Float64() float64 { return d.v }

// Kind implements Coefficient.
func (d *Double) Kind() Kind { return KindDouble }

// Clone implements Coefficient.
func (d *Double) Clone() Coefficient { return &Double{v: d.v} }

// Zero implements Coefficient.
func (d *Double) Zero() Coefficient { return &Double{} }

// IsZero implements Coefficient.
func (d *Double) IsZero() bool { return d.v == 0 }

// IsIgnorable implements Coefficient: |v| <= tol.
func (d *Double) IsIgnorable(tol float64) bool { return math.Abs(d.v) <= tol }

// AddAssign implements Coefficient.
func (d *Double) AddAssign(x Coefficient) { d.v += x.(*Double).v }

// SubAssign implements Coefficient.
func (d *Double) SubAssign(x Coefficient) { d.v -= x.(*Double).v }

// Negate implements Coefficient.
func (d *Double) Negate() { d.v = -d.v }

// Mul implements Coefficient.
func (d *Double) Mul(x Coefficient, _ Env) (Coefficient, error) {
	return &Double{v: d.v * x.(*Double).v}, nil
}

// AddProduct implements Coefficient.
func (d *Double) AddProduct(a, b Coefficient, sign int, _ Env) error {
	p := a.(*Double).v * b.(*Double).v
	if sign < 0 {
		d.v -= p
	} else {
		d.v += p
	}

	return nil
}

// DivInt implements Coefficient.
func (d *Double) DivInt(n int64) error {
	if n == 0 {
		return coeffErrorf("DivInt", d, ErrDivisionByZero)
	}
	d.v /= float64(n)

	return nil
}

// Quo implements Coefficient. Division by exactly 0.0 is an error, not ±Inf.
func (d *Double) Quo(x Coefficient) (Coefficient, error) {
	y := x.(*Double).v
	if y == 0 {
		return nil, coeffErrorf("Quo", d, ErrDivisionByZero)
	}

	return &Double{v: d.v / y}, nil
}

// Norm implements Coefficient.
func (d *Double) Norm() float64 { return math.Abs(d.v) }

// Hash implements Coefficient (−0 and +0 hash alike).
func (d *Double) Hash() uint64 {
	v := d.v
	if v == 0 {
		v = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))

	return xxhash.Sum64(buf[:])
}

// Compare implements Coefficient.
func (d *Double) Compare(x Coefficient) int {
	y := x.(*Double).v
	switch {
	case d.v < y:
		return -1
	case d.v > y:
		return 1
	}

	return 0
}

// String renders the shortest representation that round-trips.
func (d *Double) String() string { return strconv.FormatFloat(d.v, 'g', -1, 64) }
