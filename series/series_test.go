package series_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// ------------------------------------------------------------------------
// 1. Insertion: padding, merging, erasure and validation.
// ------------------------------------------------------------------------

func TestInsertPadsAndMerges(t *testing.T) {
	args := layout(t, []string{"x", "y"}, nil)
	s := series.New(key.KindMonomial, coeff.KindInteger, args)

	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewInteger(2)}))
	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(1, 0), Coeff: coeff.NewInteger(3)}))
	require.Equal(t, 1, s.Len())
	require.Equal(t, "5|1;0", s.String())
	require.Equal(t, 2, s.Terms()[0].Key.Width(), "stored keys carry the full width")

	cf, ok := s.Find(key.NewMonomial(1))
	require.True(t, ok)
	require.Equal(t, "5", cf.String())

	require.NoError(t, s.Subtract(series.Term{Key: key.NewMonomial(1, 0), Coeff: coeff.NewInteger(5)}))
	require.True(t, s.IsEmpty(), "a sum that becomes zero is erased")
	require.Equal(t, "0", s.String())
	require.Equal(t, "0", s.Coefficient(key.NewMonomial(1)).String())
}

func TestInsertDoesNotRetainCoefficient(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := series.New(key.KindMonomial, coeff.KindInteger, args)
	cf := coeff.NewInteger(4)
	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(2), Coeff: cf}))
	cf.Negate()
	require.Equal(t, "4|2", s.String())
}

func TestInsertRejects(t *testing.T) {
	args := layout(t, []string{"x", "y"}, []string{"a"})
	s := series.New(key.KindMonomial, coeff.KindInteger, args)

	err := s.Insert(series.Term{Key: key.NewMonomial(1, 0, 0), Coeff: coeff.NewInteger(1)})
	require.ErrorIs(t, err, series.ErrKeyTooWide)

	err = s.Insert(series.Term{Key: key.NewTrig(true, 1), Coeff: coeff.NewInteger(1)})
	require.ErrorIs(t, err, series.ErrKeyKind)

	err = s.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewDouble(1)})
	require.ErrorIs(t, err, series.ErrCoefficientKind)

	err = s.Insert(series.Term{Key: key.NewMonomial(1)})
	require.ErrorIs(t, err, series.ErrCoefficientKind)
	require.True(t, s.IsEmpty())
}

func TestInsertTrigCanonicalizes(t *testing.T) {
	args := layout(t, nil, []string{"a", "b"})
	s := series.New(key.KindTrig, coeff.KindInteger, args)

	// sin(−a+b) = −sin(a−b)
	require.NoError(t, s.Insert(series.Term{Key: key.NewTrig(false, -1, 1), Coeff: coeff.NewInteger(3)}))
	cf, ok := s.Find(key.NewTrig(false, 1, -1))
	require.True(t, ok)
	require.Equal(t, "-3", cf.String())
	require.Equal(t, "-3|1;-1;s", s.String())

	// cos is even
	require.NoError(t, s.Insert(series.Term{Key: key.NewTrig(true, -2, 0), Coeff: coeff.NewInteger(1)}))
	cf, ok = s.Find(key.NewTrig(true, 2))
	require.True(t, ok)
	require.Equal(t, "1", cf.String())

	// sin 0 is ignorable
	require.NoError(t, s.Insert(series.Term{Key: key.NewTrig(false, 0, 0), Coeff: coeff.NewInteger(9)}))
	require.Equal(t, 2, s.Len())
}

func TestIgnorableCoefficientsAreDropped(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := series.New(key.KindMonomial, coeff.KindDouble, args, series.WithTolerance(1e-9))

	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(3), Coeff: coeff.NewDouble(1e-12)}))
	require.True(t, s.IsEmpty())

	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewDouble(1)}))
	require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewDouble(-1 + 1e-12)}))
	require.True(t, s.IsEmpty(), "accumulated values within tolerance are erased")
	require.Equal(t, 1e-9, s.Tolerance())
}

func TestInsertBatch(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s, err := series.FromTerms(key.KindMonomial, coeff.KindRational, args, []series.Term{
		{Key: key.NewMonomial(2), Coeff: coeff.NewRational(1, 2)},
		{Key: key.NewMonomial(0), Coeff: coeff.NewRational(1, 3)},
		{Key: key.NewMonomial(2), Coeff: coeff.NewRational(1, 2)},
	})
	require.NoError(t, err)
	require.Equal(t, "1/3|0 + 1|2", s.String())

	_, err = series.FromTerms(key.KindMonomial, coeff.KindRational, args, []series.Term{
		{Key: key.NewMonomial(1), Coeff: coeff.NewInteger(1)},
	})
	require.ErrorIs(t, err, series.ErrCoefficientKind)
}

// ------------------------------------------------------------------------
// 2. Constructors and queries.
// ------------------------------------------------------------------------

func TestConstructors(t *testing.T) {
	args := layout(t, []string{"x"}, []string{"a"})

	one, err := series.One(key.KindMonomial, coeff.KindInteger, args)
	require.NoError(t, err)
	require.Equal(t, "1|0", one.String())
	require.True(t, one.IsConstant())

	c, err := series.Constant(key.KindTrig, coeff.NewRational(3, 4), args)
	require.NoError(t, err)
	require.Equal(t, "3/4|0;c", c.String())
	v, err := c.ConstantValue()
	require.NoError(t, err)
	require.Equal(t, "3/4", v.String())

	x, err := series.Variable("x", coeff.KindInteger, args)
	require.NoError(t, err)
	require.Equal(t, "1|1", x.String())
	require.False(t, x.IsConstant())
	_, err = x.ConstantValue()
	require.ErrorIs(t, err, series.ErrNotConstant)

	sa, err := series.Sin("a", coeff.KindDouble, args)
	require.NoError(t, err)
	require.Equal(t, "1|1;s", sa.String())

	_, err = series.Variable("a", coeff.KindInteger, args)
	require.ErrorIs(t, err, series.ErrUnknownSymbol, "a lives in the trig slot")
	_, err = series.Cos("x", coeff.KindInteger, args)
	require.ErrorIs(t, err, series.ErrUnknownSymbol)
}

func TestQueries(t *testing.T) {
	args := layout(t, []string{"x", "y"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{3, 0, 0}, []int64{-2, 1, 2}, []int64{1, 4, 0})

	lo, hi := s.DegreeRange()
	require.Equal(t, 0, lo)
	require.Equal(t, 4, hi)
	require.Equal(t, 6.0, s.Norm())
	require.Equal(t, key.KindMonomial, s.KeyKind())
	require.Equal(t, coeff.KindInteger, s.CoeffKind())
	require.Equal(t, 2, s.Width())

	var degrees []int
	s.Each(func(k key.Key, _ coeff.Coefficient) bool {
		degrees = append(degrees, k.Degree())
		return true
	})
	require.Equal(t, []int{0, 3, 4}, degrees, "iteration follows the key order")

	c := s.Clone()
	require.True(t, c.Equal(s))
	require.NoError(t, c.Insert(series.Term{Key: key.NewMonomial(), Coeff: coeff.NewInteger(1)}))
	require.False(t, c.Equal(s))
	require.Equal(t, "3", s.Coefficient(key.NewMonomial(0, 0)).String())

	_, ok := s.Find(key.NewTrig(true, 1))
	require.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Linear arithmetic and layouts.
// ------------------------------------------------------------------------

func TestAddSubNeg(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	a := poly(t, coeff.KindInteger, args, []int64{1, 0}, []int64{2, 1})
	b := poly(t, coeff.KindInteger, args, []int64{-1, 0}, []int64{5, 3})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "2|1 + 5|3", sum.String())
	require.Equal(t, "1|0 + 2|1", a.String(), "operands are not modified")

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a))

	require.Equal(t, "-1|0 + -2|1", a.Neg().String())

	self, err := a.Sub(a)
	require.NoError(t, err)
	require.True(t, self.IsEmpty())

	_, err = a.Add(series.New(key.KindMonomial, coeff.KindDouble, args))
	require.ErrorIs(t, err, series.ErrCoefficientKind)
	_, err = a.Add(series.New(key.KindTrig, coeff.KindInteger, args))
	require.ErrorIs(t, err, series.ErrKeyKind)
}

func TestScaleAndDivide(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{4, 0}, []int64{2, 1})

	h, err := s.DivInt(2)
	require.NoError(t, err)
	require.Equal(t, "2|0 + 1|1", h.String())

	_, err = h.DivInt(2)
	require.ErrorIs(t, err, coeff.ErrInexact)
	_, err = s.DivInt(0)
	require.ErrorIs(t, err, coeff.ErrDivisionByZero)

	z, err := s.ScaleBy(coeff.NewInteger(0))
	require.NoError(t, err)
	require.True(t, z.IsEmpty())

	m, err := s.ScaleBy(coeff.NewInteger(-3))
	require.NoError(t, err)
	require.Equal(t, "-12|0 + -6|1", m.String())

	_, err = s.ScaleBy(coeff.NewDouble(2))
	require.ErrorIs(t, err, series.ErrCoefficientKind)
}

func TestRealignAndMergedLayouts(t *testing.T) {
	tab := symbol.NewTable()
	ax := layoutIn(t, tab, []string{"x"}, nil)
	ay := layoutIn(t, tab, []string{"y"}, nil)
	axy := layoutIn(t, tab, []string{"x", "y"}, nil)

	x, err := series.Variable("x", coeff.KindInteger, ax)
	require.NoError(t, err)
	y, err := series.Variable("y", coeff.KindInteger, ay)
	require.NoError(t, err)

	w, err := x.Realign(axy)
	require.NoError(t, err)
	require.Equal(t, 2, w.Width())
	require.Equal(t, "1|1;0", w.String())

	_, err = w.Realign(ay)
	require.ErrorIs(t, err, series.ErrUnknownSymbol)

	sum, err := x.Add(y)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, sum.Arguments().Names(symbol.Poly))
	require.Equal(t, 2, sum.Len())
	require.True(t, sum.EqualWithin(sum.Clone(), 0))
	require.Equal(t, 1, x.Width(), "Add does not widen its operands")
}

func TestEqualWithin(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	a := series.New(key.KindMonomial, coeff.KindDouble, args)
	b := series.New(key.KindMonomial, coeff.KindDouble, args)
	require.NoError(t, a.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewDouble(1)}))
	require.NoError(t, b.Insert(series.Term{Key: key.NewMonomial(1), Coeff: coeff.NewDouble(1 + 1e-12)}))

	require.False(t, a.Equal(b))
	require.True(t, a.EqualWithin(b, 1e-9))
	require.False(t, a.EqualWithin(b, 1e-15))
}
