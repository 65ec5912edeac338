package series_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/truncate"
)

func TestPowSmall(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{1, 0}, []int64{1, 1})
	ctx := context.Background()

	p0, err := series.Pow(ctx, s, 0, truncate.None())
	require.NoError(t, err)
	require.Equal(t, "1|0", p0.String())

	p1, err := series.Pow(ctx, s, 1, truncate.None())
	require.NoError(t, err)
	require.True(t, p1.Equal(s))

	p5, err := series.Pow(ctx, s, 5, truncate.None())
	require.NoError(t, err)
	require.Equal(t, "1|0 + 5|1 + 10|2 + 10|3 + 5|4 + 1|5", p5.String())

	p5t, err := series.Pow(ctx, s, 5, truncate.ByDegree(3))
	require.NoError(t, err)
	require.Equal(t, "1|0 + 5|1 + 10|2", p5t.String())

	_, err = series.Pow(ctx, s, -1, truncate.None())
	require.ErrorIs(t, err, series.ErrNegativePower)
}

// TestPowTruncatesTheBase checks that a single-factor power is truncated too.
func TestPowTruncatesTheBase(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{1, 0}, []int64{1, 4})

	p, err := series.Pow(context.Background(), s, 1, truncate.ByDegree(2))
	require.NoError(t, err)
	require.Equal(t, "1|0", p.String())
}

func TestBinomialPower(t *testing.T) {
	args := layout(t, []string{"x", "y"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{1, 1, 0}, []int64{1, 0, 1})

	p, err := series.Pow(context.Background(), s, 200, truncate.None(), series.WithThreads(2))
	require.NoError(t, err)
	require.Equal(t, 201, p.Len())

	mid, err := coeff.Binomial(200, 100)
	require.NoError(t, err)
	require.Equal(t, mid.String(), p.Coefficient(key.NewMonomial(100, 100)).String())
	require.Equal(t, "1", p.Coefficient(key.NewMonomial(200, 0)).String())
	lo, hi := p.DegreeRange()
	require.Equal(t, 200, lo)
	require.Equal(t, 200, hi)
}

// TestBinomialStress squares x+y and raises the square to the 10000th power:
// (x+y)^20000 has one term per split of the degree.
func TestBinomialStress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping (x+y)^20000 in short mode")
	}
	args := layout(t, []string{"x", "y"}, nil)
	s := poly(t, coeff.KindDouble, args, []int64{1, 1, 0}, []int64{1, 0, 1})
	ctx := context.Background()

	sq, err := series.Pow(ctx, s, 2, truncate.None())
	require.NoError(t, err)
	require.Equal(t, 3, sq.Len())

	p, err := series.Pow(ctx, sq, 10000, truncate.None(), series.WithThreads(4))
	require.NoError(t, err)
	require.Equal(t, 20001, p.Len())
}

func TestPowerSeriesIterations(t *testing.T) {
	args := layout(t, []string{"x"}, nil)
	s := poly(t, coeff.KindInteger, args, []int64{1, 1}, []int64{1, 2})

	// s^1, s^2, s^3 start below degree 4
	n, err := s.PowerSeriesIterations(truncate.ByDegree(4), 1, 1)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = s.PowerSeriesIterations(truncate.None(), 1, 1)
	require.ErrorIs(t, err, truncate.ErrIneffective)

	st := s.Stats(truncate.ByDegree(4))
	require.True(t, st.Graded)
	require.Equal(t, 1, st.MinDegree)
	require.Equal(t, 2.0, st.Norm)
}
