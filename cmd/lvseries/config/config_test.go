package config_test

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/cmd/lvseries/config"
	"github.com/katalvlaran/lvseries/truncate"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := config.DefaultConfig()
	require.NoError(t, c.Validate())
	require.False(t, c.Policy().IsActive())
	require.Len(t, c.MulOptions(logr.Discard()), 4)
	require.Len(t, c.IOOptions(logr.Discard()), 3)
}

func TestValidateReportsEveryField(t *testing.T) {
	c := config.DefaultConfig()
	c.Algorithm = "quantum"
	c.Threads = 0
	c.MemoryLimit = -1
	c.Separator = "|"
	c.Truncate.Norm = -2

	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, field := range []string{"algorithm", "threads", "memory_limit", "separator", "truncate.norm"} {
		require.Contains(t, err.Error(), field)
	}
}

func TestPolicy(t *testing.T) {
	c := config.DefaultConfig()
	c.Truncate.Degree = 5
	require.Equal(t, truncate.Degree, c.Policy().Mode())
	require.Equal(t, 5, c.Policy().DegreeLimit())

	c.Truncate.PartialSymbols = []string{" y", "x", ""}
	p := c.Policy()
	require.Equal(t, truncate.PartialDegree, p.Mode())
	require.Equal(t, []string{"x", "y"}, p.Names())

	c.Truncate.Degree = config.NoDegree
	require.Error(t, c.Validate())

	c.Truncate.PartialSymbols = nil
	c.Truncate.Norm = 1e-6
	p = c.Policy()
	require.Equal(t, truncate.Inactive, p.Mode())
	require.Equal(t, 1e-6, p.NormLimit())
}

func TestIOOptionsWithPlaces(t *testing.T) {
	c := config.DefaultConfig()
	c.Places = 3
	require.Len(t, c.IOOptions(logr.Discard()), 4)
}
