package series_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// algorithms lists every multiplication strategy the tests compare.
var algorithms = []series.Algorithm{series.Automatic, series.Plain, series.VectorCoded, series.HashCoded}

// layout registers poly and trig in a fresh table and returns their arguments.
func layout(t testing.TB, poly, trig []string) symbol.Arguments {
	t.Helper()
	tab := symbol.NewTable()

	return layoutIn(t, tab, poly, trig)
}

func layoutIn(t testing.TB, tab *symbol.Table, poly, trig []string) symbol.Arguments {
	t.Helper()
	p := make([]*symbol.Symbol, len(poly))
	for i, n := range poly {
		p[i] = tab.MustRegister(n)
	}
	q := make([]*symbol.Symbol, len(trig))
	for i, n := range trig {
		q[i] = tab.MustRegister(n)
	}
	args, err := symbol.NewArguments(p, q)
	require.NoError(t, err)

	return args
}

// poly builds a monomial series from (coefficient, exponents...) rows.
func poly(t testing.TB, ck coeff.Kind, args symbol.Arguments, rows ...[]int64) *series.Series {
	t.Helper()
	s := series.New(key.KindMonomial, ck, args)
	for _, r := range rows {
		cf, err := coeff.FromInt(ck, r[0])
		require.NoError(t, err)
		exps := make([]int, len(r)-1)
		for i, e := range r[1:] {
			exps[i] = int(e)
		}
		require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(exps...), Coeff: cf}))
	}

	return s
}

// randomPoly returns a deterministic pseudo-random polynomial with up to n
// terms, exponents in [0, maxExp] and small non-zero coefficients.
func randomPoly(t testing.TB, ck coeff.Kind, args symbol.Arguments, n, maxExp int, seed int64) *series.Series {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	width := args.Len(symbol.Poly)
	s := series.New(key.KindMonomial, ck, args)
	for i := 0; i < n; i++ {
		exps := make([]int, width)
		for j := range exps {
			exps[j] = rng.Intn(maxExp + 1)
		}
		c := int64(rng.Intn(9) - 4)
		if c == 0 {
			c = 5
		}
		cf, err := coeff.FromInt(ck, c)
		require.NoError(t, err)
		require.NoError(t, s.Insert(series.Term{Key: key.NewMonomial(exps...), Coeff: cf}))
	}

	return s
}

// randomTrig is randomPoly for trigonometric keys with frequencies in [-maxFreq, maxFreq].
func randomTrig(t testing.TB, ck coeff.Kind, args symbol.Arguments, n, maxFreq int, seed int64) *series.Series {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	width := args.Len(symbol.Trig)
	s := series.New(key.KindTrig, ck, args)
	for i := 0; i < n; i++ {
		freqs := make([]int, width)
		for j := range freqs {
			freqs[j] = rng.Intn(2*maxFreq+1) - maxFreq
		}
		cf, err := coeff.FromInt(ck, int64(rng.Intn(7)+1))
		require.NoError(t, err)
		require.NoError(t, s.Insert(series.Term{Key: key.NewTrig(rng.Intn(2) == 0, freqs...), Coeff: cf}))
	}

	return s
}

// requireNoDuplicateKeys checks that no two stored keys are equal.
func requireNoDuplicateKeys(t *testing.T, s *series.Series) {
	t.Helper()
	seen := make(map[string]bool, s.Len())
	for _, term := range s.Terms() {
		k := term.Key.String()
		require.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
