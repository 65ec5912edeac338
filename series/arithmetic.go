package series

import (
	"github.com/katalvlaran/lvseries/coeff"
)

// Add returns s + o over the merged argument layout.
//
// Errors:
//   - ErrKeyKind, ErrCoefficientKind for incompatible operands.
func (s *Series) Add(o *Series) (*Series, error) { return s.combine("Add", o, false) }

// Sub returns s − o over the merged argument layout.
func (s *Series) Sub(o *Series) (*Series, error) { return s.combine("Sub", o, true) }

func (s *Series) combine(method string, o *Series, subtract bool) (*Series, error) {
	if err := checkCompatible(method, s, o); err != nil {
		return nil, err
	}
	a, b, err := alignPair(s, o)
	if err != nil {
		return nil, err
	}
	if a == s {
		a = s.Clone()
	}
	if err = a.MergeTerms(b, subtract); err != nil {
		return nil, err
	}

	return a, nil
}

// Neg returns −s.
func (s *Series) Neg() *Series {
	out := s.emptyLike(s.args)
	for _, t := range s.snapshot() {
		cf := t.Coeff.Clone()
		cf.Negate()
		out.accumulate(t.Key, cf)
	}

	return out
}

// ScaleBy returns s·c for a scalar c of the series' scalar kind (the inner
// kind for Poisson series). Terms that become ignorable are dropped.
//
// Errors:
//   - ErrCoefficientKind if c has the wrong kind.
func (s *Series) ScaleBy(c coeff.Coefficient) (*Series, error) {
	if c == nil || c.Kind() != s.inner {
		return nil, seriesErrorf("ScaleBy", s.inner.String(), ErrCoefficientKind)
	}
	out := s.emptyLike(s.args)
	for _, t := range s.snapshot() {
		cf, err := scale(t.Coeff, c)
		if err != nil {
			return nil, err
		}
		out.accumulate(t.Key, cf)
	}

	return out, nil
}

func scale(cf, c coeff.Coefficient) (coeff.Coefficient, error) {
	n, ok := cf.(*Nested)
	if !ok {
		return cf.Mul(c, nil)
	}
	p, err := n.s.ScaleBy(c)
	if err != nil {
		return nil, err
	}

	return &Nested{s: p}, nil
}

// DivInt returns s/d, dividing every coefficient by the machine integer d.
//
// Errors:
//   - coeff.ErrDivisionByZero, coeff.ErrInexact from the coefficients.
func (s *Series) DivInt(d int64) (*Series, error) {
	out := s.Clone()
	if err := out.divideInPlace(d); err != nil {
		return nil, err
	}

	return out, nil
}

// divideInPlace divides every stored coefficient by d and erases terms that
// became ignorable.
func (s *Series) divideInPlace(d int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var drop []*Term
	it := s.order.Iterator()
	for it.Next() {
		t := it.Value().(*Term)
		if err := t.Coeff.DivInt(d); err != nil {
			return seriesErrorf("DivInt", t.String(), err)
		}
		if t.Coeff.IsIgnorable(s.tol) {
			drop = append(drop, t)
		}
	}
	for _, t := range drop {
		h := t.Key.Hash()
		for i, u := range s.index[h] {
			if u == t {
				s.eraseAt(h, i)
				break
			}
		}
	}

	return nil
}
