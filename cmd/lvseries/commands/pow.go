package commands

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// NewPowCmd returns the command raising a series file to a power.
func NewPowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pow A N",
		Short: "Raise a series to a non-negative integer power",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[1])
			if err != nil {
				return err
			}
			return handlePow(cmd, args[0], n, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json for JSON, stdout when empty)")

	return cmd
}

func handlePow(cmd *cobra.Command, path string, n int, output string) error {
	ctx := cmd.Context()
	c := configFrom(ctx)
	log := logr.FromContextOrDiscard(ctx)
	ioOpts := c.IOOptions(log)

	s, err := readSeries(path, symbol.NewTable(), log, ioOpts)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := series.Pow(ctx, s, n, c.Policy(), c.MulOptions(log)...)
	if err != nil {
		return err
	}
	log.Info("raised", "terms", s.Len(), "power", n, "result", out.Len(), "elapsed", time.Since(start).String())

	return writeSeries(cmd.OutOrStdout(), output, out, ioOpts)
}
