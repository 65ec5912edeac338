package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
	"github.com/katalvlaran/lvseries/truncate"
)

var (
	infoStart = 1
	infoStep  = 1
)

// AddInfoFlags declares the power-series estimate flags.
func AddInfoFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&infoStart, "start", infoStart, "first power of the power-series estimate")
	cmd.Flags().IntVar(&infoStep, "step", infoStep, "power increment of the power-series estimate")
}

// NewInfoCmd returns the command describing a series file.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info A",
		Short: "Describe a series: layout, size, degrees, norm and power-series reach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleInfo(cmd, args[0])
		},
	}
	AddInfoFlags(cmd)

	return cmd
}

func handleInfo(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	c := configFrom(ctx)
	log := logr.FromContextOrDiscard(ctx)

	s, err := readSeries(path, symbol.NewTable(), log, c.IOOptions(log))
	if err != nil {
		return err
	}

	return describe(cmd.OutOrStdout(), s, c.Policy(), infoStart, infoStep)
}

func describe(w io.Writer, s *series.Series, p truncate.Policy, start, step int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	args := s.Arguments()
	ck := s.CoeffKind().String()
	if s.CoeffKind() == coeff.KindNested {
		ck += "(" + s.InnerKind().String() + ")"
	}
	lo, hi := s.DegreeRange()

	fmt.Fprintf(tw, "key\t%s\n", s.KeyKind())
	fmt.Fprintf(tw, "coeff\t%s\n", ck)
	for e := symbol.Echelon(0); e < symbol.NumEchelons; e++ {
		fmt.Fprintf(tw, "%s\t[%s]\n", e, strings.Join(args.Names(e), ", "))
	}
	fmt.Fprintf(tw, "terms\t%d\n", s.Len())
	fmt.Fprintf(tw, "degree\t%d..%d\n", lo, hi)
	fmt.Fprintf(tw, "norm\t%g\n", s.Norm())
	fmt.Fprintf(tw, "truncation\t%s\n", p)
	if n, err := s.PowerSeriesIterations(p, start, step); err == nil {
		fmt.Fprintf(tw, "power series\t%d terms from power %d step %d\n", n, start, step)
	} else {
		fmt.Fprintf(tw, "power series\tunbounded (%v)\n", err)
	}

	return tw.Flush()
}
