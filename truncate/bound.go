package truncate

import (
	"sort"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/symbol"
)

// Graded is implemented by composite coefficients that carry a polynomial
// degree (the nested polynomial coefficients of Poisson series).
// Positions refer to the Poly slot of the enclosing series.
type Graded interface {
	// LowDegree is the minimum total degree over the coefficient's terms.
	LowDegree() int

	// LowPartialDegree is the minimum degree restricted to positions.
	LowPartialDegree(positions []int) int
}

// Measure is what the truncator needs to know about one term.
type Measure struct {
	Degree int
	Norm   float64
}

// Bound is a Policy resolved against one series layout.
// It is immutable and safe for concurrent use.
type Bound struct {
	p         Policy
	positions []int // Poly-slot positions for PartialDegree
	graded    bool  // the layout has a degree to measure
}

// Bind resolves p for series with the given arguments and term kinds.
// Degree criteria are effective when keys are monomials or coefficients are
// graded (KindNested); otherwise only the norm criterion can apply.
func (p Policy) Bind(args symbol.Arguments, kk key.Kind, ck coeff.Kind) *Bound {
	b := &Bound{p: p, graded: kk == key.KindMonomial || ck == coeff.KindNested}
	if p.mode == PartialDegree {
		b.positions = args.Positions(symbol.Poly, p.names)
	}

	return b
}

// Policy returns the bound policy.
func (b *Bound) Policy() Policy { return b.p }

// Positions returns the resolved partial-degree positions.
func (b *Bound) Positions() []int { return b.positions }

func (b *Bound) degreeActive() bool { return b.p.mode != Inactive && b.graded }

func (b *Bound) normActive() bool { return b.p.normLimit > 0 }

// Active reports whether any criterion applies to this layout.
func (b *Bound) Active() bool { return b.degreeActive() || b.normActive() }

// Measure computes the truncation measure of a term.
func (b *Bound) Measure(k key.Key, cf coeff.Coefficient) Measure {
	m := Measure{}
	if b.normActive() {
		m.Norm = cf.Norm()
	}
	if !b.degreeActive() {
		return m
	}
	if k.Kind() == key.KindMonomial {
		if b.p.mode == PartialDegree {
			m.Degree = k.PartialDegree(b.positions)
		} else {
			m.Degree = k.Degree()
		}
		return m
	}
	if g, ok := cf.(Graded); ok {
		if b.p.mode == PartialDegree {
			m.Degree = g.LowPartialDegree(b.positions)
		} else {
			m.Degree = g.LowDegree()
		}
	}

	return m
}

// Order returns the permutation of ms under which Skip is monotonic:
// ascending degree when the degree criterion is active, otherwise descending
// norm; the identity when nothing is active. The sort is stable.
// Complexity: O(n log n).
func (b *Bound) Order(ms []Measure) []int {
	idx := make([]int, len(ms))
	for i := range idx {
		idx[i] = i
	}
	switch {
	case b.degreeActive():
		sort.SliceStable(idx, func(x, y int) bool { return ms[idx[x]].Degree < ms[idx[y]].Degree })
	case b.normActive():
		sort.SliceStable(idx, func(x, y int) bool { return ms[idx[x]].Norm > ms[idx[y]].Norm })
	}

	return idx
}

// Skip is the break condition of the primary criterion. With both inputs
// ordered by Order, once Skip(m1, m2[j]) holds it holds for every later j,
// so the caller breaks the inner loop; when it holds for the first j the
// outer loop can stop as well.
func (b *Bound) Skip(m1, m2 Measure) bool {
	switch {
	case b.degreeActive():
		return m1.Degree+m2.Degree >= b.p.degree
	case b.normActive():
		return m1.Norm*m2.Norm < b.p.normLimit
	}

	return false
}

// Discard is the non-breaking secondary test: the norm criterion when it is
// combined with an active degree criterion.
func (b *Bound) Discard(m1, m2 Measure) bool {
	return b.degreeActive() && b.normActive() && m1.Norm*m2.Norm < b.p.normLimit
}

// Accept is the per-result admission test on the degree of a product term.
func (b *Bound) Accept(degree int) bool {
	return !b.degreeActive() || degree < b.p.degree
}

// AcceptTerm measures a result term and applies Accept.
func (b *Bound) AcceptTerm(k key.Key, cf coeff.Coefficient) bool {
	if !b.degreeActive() {
		return true
	}

	return b.Accept(b.Measure(k, cf).Degree)
}
