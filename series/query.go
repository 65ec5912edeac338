package series

import (
	"strings"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/truncate"
)

// Terms returns a copy of every term in ascending key order.
// Complexity: O(n) plus coefficient copies.
func (s *Series) Terms() []Term {
	ts := s.snapshot()
	for i := range ts {
		ts[i].Coeff = ts[i].Coeff.Clone()
	}

	return ts
}

// Each calls fn for every term in ascending key order until fn returns false.
// The coefficient passed to fn belongs to the series and must not be modified.
// fn must not mutate s.
func (s *Series) Each(fn func(k key.Key, cf coeff.Coefficient) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it := s.order.Iterator()
	for it.Next() {
		t := it.Value().(*Term)
		if !fn(t.Key, t.Coeff) {
			return
		}
	}
}

// Find returns a copy of the coefficient stored for k (after padding and
// canonicalization; sine keys given in non-canonical form report the
// correspondingly signed value).
func (s *Series) Find(k key.Key) (coeff.Coefficient, bool) {
	if k == nil || k.Kind() != s.kk || k.Width() > s.width {
		return nil, false
	}
	ck, sign := k.Pad(s.width).Canonical()
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.lookup(ck)
	if t == nil {
		return nil, false
	}
	cf := t.Coeff.Clone()
	if sign < 0 {
		cf.Negate()
	}

	return cf, true
}

// Coefficient is Find returning the zero coefficient for absent keys.
func (s *Series) Coefficient(k key.Key) coeff.Coefficient {
	if cf, ok := s.Find(k); ok {
		return cf
	}

	return s.zeroCoefficient()
}

func (s *Series) zeroCoefficient() coeff.Coefficient {
	if s.ck == coeff.KindNested {
		return &Nested{s: New(key.KindMonomial, s.inner, s.args, WithTolerance(s.tol), WithLogger(s.log))}
	}

	return coeff.New(s.ck)
}

// Equal reports exact equality: same kinds, same layout and the same terms
// with Compare-equal coefficients.
func (s *Series) Equal(o *Series) bool {
	if s.kk != o.kk || s.ck != o.ck || !s.args.Equal(o.args) {
		return false
	}
	a, b := s.snapshot(), o.snapshot()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Key.Equal(b[i].Key) || a[i].Coeff.Compare(b[i].Coeff) != 0 {
			return false
		}
	}

	return true
}

// EqualWithin reports whether s − o has no term with norm above tol.
// Layouts are merged first, so series over different arguments can compare equal.
func (s *Series) EqualWithin(o *Series, tol float64) bool {
	d, err := s.Sub(o)
	if err != nil {
		return false
	}
	ok := true
	d.Each(func(_ key.Key, cf coeff.Coefficient) bool {
		ok = cf.Norm() <= tol
		return ok
	})

	return ok
}

// Norm is the sum of coefficient norms.
func (s *Series) Norm() float64 {
	var n float64
	s.Each(func(_ key.Key, cf coeff.Coefficient) bool {
		n += cf.Norm()
		return true
	})

	return n
}

// DegreeRange returns the minimum and maximum total degree over all terms:
// key degrees for monomial series, nested polynomial degrees for Poisson
// series, trigonometric orders otherwise. Both are 0 for the empty series.
func (s *Series) DegreeRange() (lo, hi int) {
	first := true
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		dlo, dhi := termDegrees(k, cf)
		if first || dlo < lo {
			lo = dlo
		}
		if first || dhi > hi {
			hi = dhi
		}
		first = false
		return true
	})

	return lo, hi
}

func termDegrees(k key.Key, cf coeff.Coefficient) (int, int) {
	if n, ok := cf.(*Nested); ok && k.Kind() == key.KindTrig {
		return n.s.DegreeRange()
	}
	d := k.Degree()

	return d, d
}

// Stats summarises s for power-series iteration estimates under p.
func (s *Series) Stats(p truncate.Policy) truncate.Stats {
	b := p.Bind(s.args, s.kk, s.ck)
	st := truncate.Stats{Graded: s.kk == key.KindMonomial || s.ck == coeff.KindNested}
	first := true
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		m := b.Measure(k, cf)
		if first || m.Degree < st.MinDegree {
			st.MinDegree = m.Degree
		}
		st.Norm += cf.Norm()
		first = false
		return true
	})
	st.Empty = first

	return st
}

// PowerSeriesIterations is p.PowerSeriesIterations over the statistics of s:
// how many terms s^start, s^(start+step), ... survive truncation under p.
func (s *Series) PowerSeriesIterations(p truncate.Policy, start, step int) (int, error) {
	return p.PowerSeriesIterations(s.Stats(p), start, step)
}

// IsConstant reports whether s is empty or has only the identity key.
func (s *Series) IsConstant() bool {
	_, err := s.ConstantValue()
	return err == nil
}

// ConstantValue returns the coefficient of the identity key of a constant series.
//
// Errors:
//   - ErrNotConstant if s has a non-identity key.
func (s *Series) ConstantValue() (coeff.Coefficient, error) {
	one := key.Zero(s.kk, s.width)
	ok := true
	s.Each(func(k key.Key, _ coeff.Coefficient) bool {
		ok = k.Equal(one)
		return ok
	})
	if !ok {
		return nil, seriesErrorf("ConstantValue", s.String(), ErrNotConstant)
	}

	return s.Coefficient(one), nil
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	out := s.emptyLike(s.args)
	for _, t := range s.snapshot() {
		out.accumulate(t.Key, t.Coeff.Clone())
	}

	return out
}

// String renders the terms as "cf|key" joined by " + " in ascending order;
// the zero series prints as "0".
func (s *Series) String() string {
	ts := s.snapshot()
	if len(ts) == 0 {
		return "0"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}
