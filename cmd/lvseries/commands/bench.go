package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
	"github.com/katalvlaran/lvseries/truncate"
)

var (
	benchPower      = 200
	benchAlgorithms = []string{
		series.Plain.String(),
		series.VectorCoded.String(),
		series.HashCoded.String(),
	}
)

// AddBenchFlags declares the benchmark flags.
func AddBenchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&benchPower, "n", benchPower, "power of (x+y)")
	cmd.Flags().StringSliceVar(&benchAlgorithms, "algorithms", benchAlgorithms, "algorithms to time")
}

// NewBenchCmd returns the command timing (x+y)^n with each algorithm.
func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the binomial expansion (x+y)^n with each multiplication algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handleBench(cmd, benchPower, benchAlgorithms)
		},
	}
	AddBenchFlags(cmd)

	return cmd
}

// BenchResult is one timed expansion.
type BenchResult struct {
	Algorithm series.Algorithm
	Terms     int
	Elapsed   time.Duration
}

// Binomial returns x+y with integer coefficients over a fresh table.
func Binomial() (*series.Series, error) {
	t := symbol.NewTable()
	args, err := symbol.NewArguments([]*symbol.Symbol{t.MustRegister("x"), t.MustRegister("y")}, nil)
	if err != nil {
		return nil, err
	}
	x, err := series.Variable("x", coeff.KindInteger, args)
	if err != nil {
		return nil, err
	}
	y, err := series.Variable("y", coeff.KindInteger, args)
	if err != nil {
		return nil, err
	}

	return x.Add(y)
}

// RunBench expands (x+y)^n once per algorithm; opts apply to every run after
// the algorithm selection.
func RunBench(ctx context.Context, n int, algs []series.Algorithm, opts ...series.MulOption) ([]BenchResult, error) {
	base, err := Binomial()
	if err != nil {
		return nil, err
	}
	out := make([]BenchResult, 0, len(algs))
	for _, a := range algs {
		start := time.Now()
		ro := append([]series.MulOption{series.WithAlgorithm(a)}, opts...)
		s, err := series.Pow(ctx, base, n, truncate.None(), ro...)
		if err != nil {
			return out, fmt.Errorf("%s: %w", a, err)
		}
		out = append(out, BenchResult{Algorithm: a, Terms: s.Len(), Elapsed: time.Since(start)})
	}

	return out, nil
}

func handleBench(cmd *cobra.Command, n int, names []string) error {
	ctx := cmd.Context()
	c := configFrom(ctx)
	log := logr.FromContextOrDiscard(ctx)

	algs := make([]series.Algorithm, 0, len(names))
	for _, name := range names {
		a, ok := series.ParseAlgorithm(name)
		if !ok {
			return fmt.Errorf("unknown algorithm %q", name)
		}
		algs = append(algs, a)
	}
	opts := []series.MulOption{
		series.WithThreads(c.Threads),
		series.WithMemoryLimit(c.MemoryLimit),
		series.WithMulLogger(log),
	}
	res, err := RunBench(ctx, n, algs, opts...)
	if err != nil {
		return err
	}

	return printBench(cmd.OutOrStdout(), n, res)
}

func printBench(w io.Writer, n int, res []BenchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\tterms\telapsed\t(x+y)^%d\n", n)
	for _, r := range res {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", r.Algorithm, r.Terms, r.Elapsed)
	}

	return tw.Flush()
}
