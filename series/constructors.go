package series

import (
	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/symbol"
)

// FromTerms builds a series of kinds (kk, ck) over args holding ts.
func FromTerms(kk key.Kind, ck coeff.Kind, args symbol.Arguments, ts []Term, opts ...Option) (*Series, error) {
	s := New(kk, ck, args, opts...)
	if err := s.InsertBatch(ts); err != nil {
		return nil, err
	}

	return s, nil
}

// Constant returns the series c·1 (the constant monomial, or c·cos 0).
// The coefficient kind of the series is c.Kind().
func Constant(kk key.Kind, c coeff.Coefficient, args symbol.Arguments, opts ...Option) (*Series, error) {
	if n, ok := c.(*Nested); ok {
		opts = append([]Option{WithInnerKind(n.s.ck)}, opts...)
	}
	s := New(kk, c.Kind(), args, opts...)
	if err := s.Insert(Term{Key: key.Zero(kk, s.width), Coeff: c}); err != nil {
		return nil, err
	}

	return s, nil
}

// One returns the multiplicative identity of kinds (kk, ck) over args.
// For ck == coeff.KindNested the inner kind comes from opts.
func One(kk key.Kind, ck coeff.Kind, args symbol.Arguments, opts ...Option) (*Series, error) {
	s := New(kk, ck, args, opts...)
	cf, err := s.unit()
	if err != nil {
		return nil, err
	}
	s.accumulate(key.Zero(kk, s.width), cf)

	return s, nil
}

// unit is the coefficient 1 of the series' kinds.
func (s *Series) unit() (coeff.Coefficient, error) {
	if s.ck != coeff.KindNested {
		return coeff.FromInt(s.ck, 1)
	}
	p, err := One(key.KindMonomial, s.inner, s.args, WithTolerance(s.tol), WithLogger(s.log))
	if err != nil {
		return nil, err
	}

	return &Nested{s: p}, nil
}

// Variable returns the polynomial x for the Poly-slot symbol name, with
// coefficient 1 of kind ck.
//
// Errors:
//   - ErrUnknownSymbol if name is not in the Poly slot of args.
func Variable(name string, ck coeff.Kind, args symbol.Arguments, opts ...Option) (*Series, error) {
	i := args.Index(symbol.Poly, name)
	if i < 0 {
		return nil, seriesErrorf("Variable", name, ErrUnknownSymbol)
	}
	s := New(key.KindMonomial, ck, args, opts...)
	cf, err := s.unit()
	if err != nil {
		return nil, err
	}
	s.accumulate(key.Unit(key.KindMonomial, s.width, i, false), cf)

	return s, nil
}

// Cos returns cos(name) for the Trig-slot symbol name with coefficient 1 of
// kind ck (a nested constant polynomial for coeff.KindNested).
func Cos(name string, ck coeff.Kind, args symbol.Arguments, opts ...Option) (*Series, error) {
	return trigUnit("Cos", name, true, ck, args, opts)
}

// Sin returns sin(name), see Cos.
func Sin(name string, ck coeff.Kind, args symbol.Arguments, opts ...Option) (*Series, error) {
	return trigUnit("Sin", name, false, ck, args, opts)
}

func trigUnit(method, name string, cos bool, ck coeff.Kind, args symbol.Arguments, opts []Option) (*Series, error) {
	i := args.Index(symbol.Trig, name)
	if i < 0 {
		return nil, seriesErrorf(method, name, ErrUnknownSymbol)
	}
	s := New(key.KindTrig, ck, args, opts...)
	cf, err := s.unit()
	if err != nil {
		return nil, err
	}
	s.accumulate(key.Unit(key.KindTrig, s.width, i, cos), cf)

	return s, nil
}
