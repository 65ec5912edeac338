package coeff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/coeff"
)

func TestPow(t *testing.T) {
	c, err := coeff.Pow(coeff.NewInteger(-2), 5)
	require.NoError(t, err)
	require.Equal(t, "-32", c.String())

	c, err = coeff.Pow(coeff.NewRational(2, 3), -2)
	require.NoError(t, err)
	require.Equal(t, "9/4", c.String())

	c, err = coeff.Pow(coeff.NewDouble(2), 10)
	require.NoError(t, err)
	require.Equal(t, "1024", c.String())

	_, err = coeff.Pow(coeff.NewInteger(2), -1)
	require.ErrorIs(t, err, coeff.ErrInexact)

	_, err = coeff.Pow(coeff.NewRational(0, 1), -1)
	require.ErrorIs(t, err, coeff.ErrDivisionByZero)
}

func TestRoot(t *testing.T) {
	c, err := coeff.Root(coeff.NewInteger(-27), 3)
	require.NoError(t, err)
	require.Equal(t, "-3", c.String())

	c, err = coeff.Root(coeff.NewRational(16, 81), 4)
	require.NoError(t, err)
	require.Equal(t, "2/3", c.String())

	_, err = coeff.Root(coeff.NewInteger(8), 2)
	require.ErrorIs(t, err, coeff.ErrInexact)

	_, err = coeff.Root(coeff.NewInteger(-4), 2)
	require.ErrorIs(t, err, coeff.ErrDomain)

	_, err = coeff.Root(coeff.NewDouble(4), 0)
	require.ErrorIs(t, err, coeff.ErrDomain)
}

func TestFactorialBinomial(t *testing.T) {
	f, err := coeff.Factorial(20)
	require.NoError(t, err)
	require.Equal(t, "2432902008176640000", f.String())

	f, err = coeff.Factorial(0)
	require.NoError(t, err)
	require.Equal(t, "1", f.String())

	_, err = coeff.Factorial(-1)
	require.ErrorIs(t, err, coeff.ErrDomain)

	b, err := coeff.Binomial(200, 100)
	require.NoError(t, err)
	require.Equal(t, "90548514656103281165404177077484163874504589675413336841320", b.String())

	b, err = coeff.Binomial(5, 7)
	require.NoError(t, err)
	require.True(t, b.IsZero())
}
