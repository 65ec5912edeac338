// Package config holds the lvseries command-line configuration and turns it
// into library options.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/seriesio"
	"github.com/katalvlaran/lvseries/truncate"
)

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// NoDegree disables degree truncation in Truncate.Degree.
const NoDegree = -1

// Config is the resolved configuration of one invocation. Field tags are the
// viper keys; environment variables use the LVSERIES_ prefix with "." as "_".
type Config struct {
	Algorithm   string   `mapstructure:"algorithm"`
	Threads     int      `mapstructure:"threads"`
	MemoryLimit int64    `mapstructure:"memory_limit"`
	Epsilon     float64  `mapstructure:"epsilon"`
	Verbosity   int      `mapstructure:"verbosity"`
	Separator   string   `mapstructure:"separator"`
	Places      int32    `mapstructure:"places"`
	Truncate    Truncate `mapstructure:"truncate"`
}

// Truncate is the truncation section.
type Truncate struct {
	Degree         int      `mapstructure:"degree"`
	PartialSymbols []string `mapstructure:"partial_symbols"`
	Norm           float64  `mapstructure:"norm"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:   series.Automatic.String(),
		Threads:     series.DefaultThreads,
		MemoryLimit: 0,
		Epsilon:     series.DefaultTolerance,
		Separator:   seriesio.DefaultFormat.KeySep,
		Places:      -1,
		Truncate:    Truncate{Degree: NoDegree},
	}
}

// Validate checks every field; it reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := series.ParseAlgorithm(c.Algorithm); !ok {
		errs = append(errs, fmt.Errorf("algorithm %q: %w", c.Algorithm, ErrInvalid))
	}
	if c.Threads < 1 {
		errs = append(errs, fmt.Errorf("threads %d: %w", c.Threads, ErrInvalid))
	}
	if c.MemoryLimit < 0 {
		errs = append(errs, fmt.Errorf("memory_limit %d: %w", c.MemoryLimit, ErrInvalid))
	}
	if !finiteNonNegative(c.Epsilon) {
		errs = append(errs, fmt.Errorf("epsilon %g: %w", c.Epsilon, ErrInvalid))
	}
	if c.Verbosity < 0 {
		errs = append(errs, fmt.Errorf("verbosity %d: %w", c.Verbosity, ErrInvalid))
	}
	if c.Separator == "" || c.Separator == seriesio.DefaultFormat.TermSep || c.Separator == seriesio.DefaultFormat.ItemSep {
		errs = append(errs, fmt.Errorf("separator %q: %w", c.Separator, ErrInvalid))
	}
	if c.Truncate.Degree < NoDegree {
		errs = append(errs, fmt.Errorf("truncate.degree %d: %w", c.Truncate.Degree, ErrInvalid))
	}
	if len(c.Truncate.PartialSymbols) > 0 && c.Truncate.Degree == NoDegree {
		errs = append(errs, fmt.Errorf("truncate.partial_symbols needs truncate.degree: %w", ErrInvalid))
	}
	if !finiteNonNegative(c.Truncate.Norm) {
		errs = append(errs, fmt.Errorf("truncate.norm %g: %w", c.Truncate.Norm, ErrInvalid))
	}

	return errors.Join(errs...)
}

func finiteNonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// Policy builds the truncation policy. Call Validate first.
func (c *Config) Policy() truncate.Policy {
	p := truncate.None()
	switch {
	case c.Truncate.Degree == NoDegree:
	case len(c.Truncate.PartialSymbols) > 0:
		p = truncate.ByPartialDegree(trimAll(c.Truncate.PartialSymbols), c.Truncate.Degree)
	default:
		p = truncate.ByDegree(c.Truncate.Degree)
	}

	return p.WithNorm(c.Truncate.Norm)
}

// MulOptions builds the multiplication options. Call Validate first.
func (c *Config) MulOptions(log logr.Logger) []series.MulOption {
	alg, _ := series.ParseAlgorithm(c.Algorithm)

	return []series.MulOption{
		series.WithAlgorithm(alg),
		series.WithThreads(c.Threads),
		series.WithMemoryLimit(c.MemoryLimit),
		series.WithMulLogger(log),
	}
}

// IOOptions builds the reader/writer options. Call Validate first.
func (c *Config) IOOptions(log logr.Logger) []seriesio.Option {
	f := seriesio.DefaultFormat
	f.KeySep = c.Separator
	opts := []seriesio.Option{
		seriesio.WithFormat(f),
		seriesio.WithLogger(log),
		seriesio.WithSeriesOptions(series.WithTolerance(c.Epsilon), series.WithLogger(log)),
	}
	if c.Places >= 0 {
		opts = append(opts, seriesio.WithDecimalPlaces(c.Places))
	}

	return opts
}

func trimAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}

	return out
}
