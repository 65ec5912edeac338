// SPDX-License-Identifier: MIT
// Package series: nested polynomial coefficients.
//
// A Poisson series is a trigonometric series whose coefficients are
// polynomials in the Poly slot of the same argument layout. Nested wraps such
// a polynomial and implements coeff.Coefficient (so the container and the
// multiplier treat it like any scalar) and truncate.Graded (so degree
// truncation sees the polynomial degree through the trigonometric keys).
//
// Nested products are computed by recursive multiplication through the
// coeff.Env handed in by the enclosing multiplier, which carries the
// truncation policy and the caller's context.

package series

import (
	"context"
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/truncate"
)

// Nested is a polynomial used as a coefficient.
type Nested struct {
	s *Series
}

var (
	_ coeff.Coefficient = (*Nested)(nil)
	_ truncate.Graded   = (*Nested)(nil)
)

// NewNested wraps a copy of p, which must have monomial keys and scalar coefficients.
//
// Errors:
//   - ErrKeyKind if p is not keyed by monomials.
//   - ErrCoefficientKind if p itself has nested coefficients.
func NewNested(p *Series) (*Nested, error) {
	if p.kk != key.KindMonomial {
		return nil, seriesErrorf("NewNested", p.kk.String(), ErrKeyKind)
	}
	if p.ck == coeff.KindNested {
		return nil, seriesErrorf("NewNested", p.ck.String(), ErrCoefficientKind)
	}

	return &Nested{s: p.Clone()}, nil
}

// Series returns a copy of the wrapped polynomial.
func (n *Nested) Series() *Series { return n.s.Clone() }

// Kind implements coeff.Coefficient.
func (n *Nested) Kind() coeff.Kind { return coeff.KindNested }

// Clone implements coeff.Coefficient.
func (n *Nested) Clone() coeff.Coefficient { return &Nested{s: n.s.Clone()} }

// Zero implements coeff.Coefficient.
func (n *Nested) Zero() coeff.Coefficient { return &Nested{s: n.s.emptyLike(n.s.args)} }

// IsZero implements coeff.Coefficient.
func (n *Nested) IsZero() bool { return n.s.Len() == 0 }

// IsIgnorable implements coeff.Coefficient. The polynomial already erases its
// own ignorable terms, so only the empty polynomial is ignorable.
func (n *Nested) IsIgnorable(float64) bool { return n.s.Len() == 0 }

// AddAssign implements coeff.Coefficient.
func (n *Nested) AddAssign(x coeff.Coefficient) { n.merge(x.(*Nested), false) }

// SubAssign implements coeff.Coefficient.
func (n *Nested) SubAssign(x coeff.Coefficient) { n.merge(x.(*Nested), true) }

func (n *Nested) merge(y *Nested, subtract bool) {
	a, b, err := alignPair(n.s, y.s)
	if err == nil {
		err = a.MergeTerms(b, subtract)
		n.s = a
	}
	if err != nil {
		// same contract as the scalar variants: mixing kinds is a programmer error
		panic(err)
	}
}

// Negate implements coeff.Coefficient.
func (n *Nested) Negate() {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	it := n.s.order.Iterator()
	for it.Next() {
		it.Value().(*Term).Coeff.Negate()
	}
}

// Mul implements coeff.Coefficient. A nil env multiplies without truncation.
func (n *Nested) Mul(x coeff.Coefficient, env coeff.Env) (coeff.Coefficient, error) {
	if env != nil {
		return env.MultiplyCoefficients(n, x)
	}
	y, ok := x.(*Nested)
	if !ok {
		return nil, seriesErrorf("Nested.Mul", x.Kind().String(), ErrCoefficientKind)
	}
	p, err := Multiply(context.Background(), n.s, y.s, truncate.None())
	if err != nil {
		return nil, err
	}

	return &Nested{s: p}, nil
}

// AddProduct implements coeff.Coefficient.
func (n *Nested) AddProduct(a, b coeff.Coefficient, sign int, env coeff.Env) error {
	p, err := a.Mul(b, env)
	if err != nil {
		return err
	}
	if sign < 0 {
		p.Negate()
	}
	n.AddAssign(p)

	return nil
}

// DivInt implements coeff.Coefficient; it divides every polynomial coefficient.
func (n *Nested) DivInt(d int64) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	it := n.s.order.Iterator()
	for it.Next() {
		if err := it.Value().(*Term).Coeff.DivInt(d); err != nil {
			return err
		}
	}

	return nil
}

// Quo implements coeff.Coefficient for constant divisors only.
//
// Errors:
//   - ErrNotConstant if x is not a constant polynomial.
//   - coefficient division errors (ErrDivisionByZero, ErrInexact).
func (n *Nested) Quo(x coeff.Coefficient) (coeff.Coefficient, error) {
	y, ok := x.(*Nested)
	if !ok {
		return nil, seriesErrorf("Nested.Quo", x.Kind().String(), ErrCoefficientKind)
	}
	c, err := y.s.ConstantValue()
	if err != nil {
		return nil, err
	}
	out := n.s.emptyLike(n.s.args)
	for _, t := range n.s.snapshot() {
		q, err := t.Coeff.Quo(c)
		if err != nil {
			return nil, err
		}
		out.accumulate(t.Key, q)
	}

	return &Nested{s: out}, nil
}

// Norm implements coeff.Coefficient: the sum of the polynomial coefficient norms.
func (n *Nested) Norm() float64 { return n.s.Norm() }

// Hash implements coeff.Coefficient.
func (n *Nested) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, t := range n.s.snapshot() {
		binary.LittleEndian.PutUint64(buf[:], t.Key.Hash())
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], t.Coeff.Hash())
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Compare implements coeff.Coefficient: term count first, then term by term
// in key order.
func (n *Nested) Compare(x coeff.Coefficient) int {
	a, b := n.s.snapshot(), x.(*Nested).s.snapshot()
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := a[i].Key.Compare(b[i].Key); c != 0 {
			return c
		}
		if c := a[i].Coeff.Compare(b[i].Coeff); c != 0 {
			return c
		}
	}

	return 0
}

// String renders "{cf|key,cf|key}".
func (n *Nested) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range n.s.snapshot() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte('}')

	return b.String()
}

// LowDegree implements truncate.Graded.
func (n *Nested) LowDegree() int {
	lo, _ := n.s.DegreeRange()
	return lo
}

// LowPartialDegree implements truncate.Graded.
func (n *Nested) LowPartialDegree(positions []int) int {
	lo := 0
	for i, t := range n.s.snapshot() {
		d := t.Key.PartialDegree(positions)
		if i == 0 || d < lo {
			lo = d
		}
	}

	return lo
}

// adoptNested brings a nested coefficient onto the layout of s.
func (s *Series) adoptNested(n *Nested) error {
	if n.s.ck != s.inner {
		return seriesErrorf("Insert", n.s.ck.String(), ErrCoefficientKind)
	}
	if n.s.args.Equal(s.args) {
		return nil
	}
	r, err := n.s.Realign(s.args)
	if err != nil {
		return err
	}
	n.s = r

	return nil
}
