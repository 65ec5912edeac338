package key_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/key"
)

// mul is a test helper returning the products of a·b as (key, sign) pairs.
func mul(t *testing.T, a, b key.Key) ([]key.Key, []int) {
	t.Helper()
	var p key.Products
	require.NoError(t, key.Multiply(a, b, &p))
	ks := make([]key.Key, p.Len())
	ss := make([]int, p.Len())
	for i := 0; i < p.Len(); i++ {
		ks[i], ss[i] = p.Key(i), p.Sign(i)
	}

	return ks, ss
}

// TestMonomialProductAddsExponents checks x·y² · x³ = x⁴y² and width extension.
func TestMonomialProductAddsExponents(t *testing.T) {
	ks, ss := mul(t, key.NewMonomial(1, 2), key.NewMonomial(3))
	require.Len(t, ks, 1)
	require.True(t, ks[0].Equal(key.NewMonomial(4, 2)))
	require.Equal(t, 2, ks[0].Width()) // wider operand wins
	require.Equal(t, []int{1}, ss)
}

// TestTrigProductWerner covers the four flavour pairs of Werner's formulas.
func TestTrigProductWerner(t *testing.T) {
	a, b := 2, 1
	cases := []struct {
		name        string
		x, y        key.Trig
		diff, sum   key.Trig
		sDiff, sSum int
	}{
		// cos a cos b = ½[cos(a−b) + cos(a+b)]
		{"cc", key.NewTrig(true, a), key.NewTrig(true, b), key.NewTrig(true, 1), key.NewTrig(true, 3), 1, 1},
		// sin a sin b = ½[cos(a−b) − cos(a+b)]
		{"ss", key.NewTrig(false, a), key.NewTrig(false, b), key.NewTrig(true, 1), key.NewTrig(true, 3), 1, -1},
		// sin a cos b = ½[sin(a−b) + sin(a+b)]
		{"sc", key.NewTrig(false, a), key.NewTrig(true, b), key.NewTrig(false, 1), key.NewTrig(false, 3), 1, 1},
		// cos a sin b = ½[sin(a+b) − sin(a−b)]
		{"cs", key.NewTrig(true, a), key.NewTrig(false, b), key.NewTrig(false, 1), key.NewTrig(false, 3), -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ks, ss := mul(t, tc.x, tc.y)
			require.Len(t, ks, 2)
			require.True(t, ks[0].Equal(tc.diff), "difference key %s", ks[0])
			require.True(t, ks[1].Equal(tc.sum), "sum key %s", ks[1])
			require.Equal(t, []int{tc.sDiff, tc.sSum}, ss)
		})
	}
}

// TestTrigProductCanonicalizesNegativeDifference checks cos(x)·sin(2x): the
// difference branch sin(−x) becomes −sin(x).
func TestTrigProductCanonicalizesNegativeDifference(t *testing.T) {
	ks, ss := mul(t, key.NewTrig(true, 1), key.NewTrig(false, 2))
	require.True(t, ks[0].Equal(key.NewTrig(false, 1)))
	require.Equal(t, 1, ss[0]) // −sin(a−b) with sin(−x) = −sin(x)
	require.True(t, ks[1].Equal(key.NewTrig(false, 3)))
	require.Equal(t, 1, ss[1])
}

// TestCosSinSameArgument checks cos(x)·sin(x) = ½ sin(2x) with an ignorable sin(0).
func TestCosSinSameArgument(t *testing.T) {
	ks, _ := mul(t, key.NewTrig(true, 1), key.NewTrig(false, 1))
	require.True(t, ks[0].IsIgnorable()) // sin(0)
	require.True(t, ks[1].Equal(key.NewTrig(false, 2)))
}

func TestMultiplyKindMismatch(t *testing.T) {
	var p key.Products
	err := key.Multiply(key.NewMonomial(1), key.NewTrig(true, 1), &p)
	require.ErrorIs(t, err, key.ErrKindMismatch)
}

func TestCanonical(t *testing.T) {
	k, s := key.NewTrig(false, 0, -2, 1).Canonical()
	require.True(t, k.Equal(key.NewTrig(false, 0, 2, -1)))
	require.Equal(t, -1, s)

	k, s = key.NewTrig(true, -1).Canonical()
	require.True(t, k.Equal(key.NewTrig(true, 1)))
	require.Equal(t, 1, s)

	k, s = key.NewMonomial(3).Canonical()
	require.True(t, k.Equal(key.NewMonomial(3)))
	require.Equal(t, 1, s)
}

func TestIgnorable(t *testing.T) {
	require.True(t, key.NewTrig(false, 0, 0).IsIgnorable())
	require.False(t, key.NewTrig(true, 0, 0).IsIgnorable())
	require.False(t, key.NewMonomial(0).IsIgnorable())
}

// TestEqualityIgnoresTrailingZeros checks that padding keeps equality and hash.
func TestEqualityIgnoresTrailingZeros(t *testing.T) {
	a := key.NewMonomial(1, 2)
	b := a.Pad(5)
	require.Equal(t, 5, b.Width())
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, key.NewTrig(true, 1).Hash(), key.NewTrig(false, 1).Hash())
	require.False(t, key.NewTrig(true, 1).Equal(key.NewMonomial(1)))
}

// TestOrder checks monomials < cosines < sines, then degree, then lexicographic.
func TestOrder(t *testing.T) {
	ordered := []key.Key{
		key.NewMonomial(0, 0),
		key.NewMonomial(0, 1),
		key.NewMonomial(1, 0),
		key.NewMonomial(1, 1),
		key.NewTrig(true, 0),
		key.NewTrig(true, 1, -1),
		key.NewTrig(true, 2, 0),
		key.NewTrig(false, 1),
	}
	for i := 0; i+1 < len(ordered); i++ {
		require.Equal(t, -1, ordered[i].Compare(ordered[i+1]), "%s < %s", ordered[i], ordered[i+1])
		require.Equal(t, 1, ordered[i+1].Compare(ordered[i]))
	}
	require.Equal(t, 0, key.NewMonomial(1).Compare(key.NewMonomial(1, 0)))
}

func TestDegrees(t *testing.T) {
	m := key.NewMonomial(1, 2, 3)
	require.Equal(t, 6, m.Degree())
	require.Equal(t, 4, m.PartialDegree([]int{0, 2}))
	require.Equal(t, 0, m.PartialDegree([]int{7}))

	tr := key.NewTrig(true, 1, -2)
	require.Equal(t, 3, tr.Degree())
	require.Equal(t, -2, tr.PartialDegree([]int{1}))
}

func TestZeroAndUnit(t *testing.T) {
	require.True(t, key.Zero(key.KindTrig, 2).Equal(key.NewTrig(true)))
	require.True(t, key.Unit(key.KindMonomial, 3, 1, false).Equal(key.NewMonomial(0, 1)))
	require.True(t, key.Unit(key.KindTrig, 2, 0, false).Equal(key.NewTrig(false, 1)))
	require.Equal(t, 2, key.ResultsPerProduct(key.KindTrig))
	require.Equal(t, 1, key.ResultsPerProduct(key.KindMonomial))
}

func TestFormatParse(t *testing.T) {
	cases := []struct {
		kind key.Kind
		text string
		want key.Key
	}{
		{key.KindMonomial, "1;0;2", key.NewMonomial(1, 0, 2)},
		{key.KindTrig, "1;-1;c", key.NewTrig(true, 1, -1)},
		{key.KindTrig, "s", key.NewTrig(false)},
	}
	for _, tc := range cases {
		k, err := key.Parse(tc.kind, tc.text)
		require.NoError(t, err)
		require.True(t, k.Equal(tc.want))
		require.Equal(t, tc.text, k.String())
	}

	k, err := key.ParseWith(key.KindMonomial, "3, 4", ",")
	require.NoError(t, err)
	require.Equal(t, "3,4", key.Format(k, ","))

	for _, bad := range []string{"", "1;x", "1;2;q"} {
		_, err = key.Parse(key.KindTrig, bad)
		require.ErrorIs(t, err, key.ErrParse, bad)
	}
	_, err = key.ParseKind("matrix")
	require.ErrorIs(t, err, key.ErrParse)
}
