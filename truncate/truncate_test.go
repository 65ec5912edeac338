package truncate_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/symbol"
	"github.com/katalvlaran/lvseries/truncate"
)

func xyz(t *testing.T) symbol.Arguments {
	t.Helper()
	tab := symbol.NewTable()
	args, err := symbol.NewArguments(
		[]*symbol.Symbol{tab.MustRegister("x"), tab.MustRegister("y"), tab.MustRegister("z")}, nil)
	require.NoError(t, err)

	return args
}

func TestPolicyConstructors(t *testing.T) {
	require.False(t, truncate.None().IsActive())
	require.Equal(t, "inactive", truncate.None().String())

	p := truncate.ByDegree(4).WithNorm(1e-3)
	require.True(t, p.IsActive())
	require.Equal(t, "degree<4,norm>=0.001", p.String())
	require.Equal(t, truncate.Inactive, p.WithoutDegree().Mode())
	require.Equal(t, 1e-3, p.WithoutDegree().NormLimit())

	q := truncate.ByPartialDegree([]string{"y", "x"}, 2)
	require.Equal(t, "partial_degree{x,y}<2", q.String())

	require.Panics(t, func() { truncate.ByNorm(-1) })
	require.Panics(t, func() { truncate.ByNorm(math.NaN()) })
}

func TestBoundMeasure(t *testing.T) {
	args := xyz(t)
	k := key.NewMonomial(1, 2, 3)
	cf := coeff.NewDouble(-0.5)

	b := truncate.ByDegree(10).Bind(args, key.KindMonomial, coeff.KindDouble)
	require.Equal(t, truncate.Measure{Degree: 6}, b.Measure(k, cf))

	b = truncate.ByPartialDegree([]string{"x", "z"}, 10).WithNorm(0.1).Bind(args, key.KindMonomial, coeff.KindDouble)
	require.Equal(t, []int{0, 2}, b.Positions())
	require.Equal(t, truncate.Measure{Degree: 4, Norm: 0.5}, b.Measure(k, cf))

	// trig keys with scalar coefficients have no degree to truncate on
	b = truncate.ByDegree(1).Bind(args, key.KindTrig, coeff.KindDouble)
	require.False(t, b.Active())
	require.True(t, b.AcceptTerm(key.NewTrig(true, 5), cf))
}

func TestBoundSkipIsMonotoneAfterOrder(t *testing.T) {
	b := truncate.ByDegree(5).Bind(xyz(t), key.KindMonomial, coeff.KindDouble)
	ms := []truncate.Measure{{Degree: 4}, {Degree: 0}, {Degree: 2}, {Degree: 2}}
	order := b.Order(ms)
	require.Equal(t, []int{1, 2, 3, 0}, order)

	m1 := truncate.Measure{Degree: 3}
	broken := false
	for _, j := range order {
		s := b.Skip(m1, ms[j])
		if broken {
			require.True(t, s, "once skipped, later terms stay skipped")
		}
		broken = broken || s
	}
	require.True(t, broken)
	require.True(t, b.Accept(4))
	require.False(t, b.Accept(5))
}

func TestBoundNormOrder(t *testing.T) {
	b := truncate.ByNorm(0.1).Bind(xyz(t), key.KindMonomial, coeff.KindDouble)
	ms := []truncate.Measure{{Norm: 0.2}, {Norm: 1}, {Norm: 0.5}}
	require.Equal(t, []int{1, 2, 0}, b.Order(ms))
	require.False(t, b.Skip(truncate.Measure{Norm: 0.5}, truncate.Measure{Norm: 0.5}))
	require.True(t, b.Skip(truncate.Measure{Norm: 0.5}, truncate.Measure{Norm: 0.1}))
	require.False(t, b.Discard(truncate.Measure{Norm: 0}, truncate.Measure{Norm: 0}), "norm is primary here")

	both := truncate.ByDegree(9).WithNorm(0.1).Bind(xyz(t), key.KindMonomial, coeff.KindDouble)
	require.True(t, both.Discard(truncate.Measure{Norm: 0.2}, truncate.Measure{Norm: 0.2}))
}

func TestPowerSeriesIterations(t *testing.T) {
	st := truncate.Stats{Graded: true, MinDegree: 2, Norm: 3}

	// powers 1,2,3,4 of a min-degree-2 series stay below degree 10 (2,4,6,8)
	n, err := truncate.ByDegree(10).PowerSeriesIterations(st, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	n, err = truncate.ByDegree(10).PowerSeriesIterations(st, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, n) // powers 0, 2, 4

	_, err = truncate.ByDegree(10).PowerSeriesIterations(truncate.Stats{Graded: true}, 1, 1)
	require.ErrorIs(t, err, truncate.ErrIneffective)

	// norm 0.5: 0.5^e >= 1e-3 for e <= 9.96
	n, err = truncate.ByNorm(1e-3).PowerSeriesIterations(truncate.Stats{Norm: 0.5}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 9, n)

	_, err = truncate.ByNorm(1e-3).PowerSeriesIterations(truncate.Stats{Norm: 2}, 1, 1)
	require.ErrorIs(t, err, truncate.ErrIneffective)

	_, err = truncate.None().PowerSeriesIterations(st, 1, 0)
	require.ErrorIs(t, err, truncate.ErrBadStep)
}

func TestControllerSnapshots(t *testing.T) {
	var c truncate.Controller
	c.SetDegreeLimit(3)
	c.SetNormLimit(0.5)
	snap := c.Snapshot()
	require.Equal(t, truncate.Degree, snap.Mode())

	c.SetPartialDegreeLimit([]string{"x"}, 2)
	require.Equal(t, truncate.Degree, snap.Mode(), "snapshots are immutable")
	require.Equal(t, truncate.PartialDegree, c.Snapshot().Mode())
	require.Equal(t, 0.5, c.Snapshot().NormLimit())

	c.UnsetDegree()
	require.Equal(t, truncate.Inactive, c.Snapshot().Mode())
	require.True(t, c.Snapshot().IsActive())
	c.UnsetAll()
	require.False(t, c.Snapshot().IsActive())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.SetDegreeLimit(i)
			_ = c.Snapshot()
		}(i)
	}
	wg.Wait()
	require.Equal(t, truncate.Degree, c.Snapshot().Mode())
}
