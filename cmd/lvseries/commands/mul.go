package commands

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// NewMulCmd returns the command multiplying two series files.
func NewMulCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "mul A B",
		Short: "Multiply two series under the configured truncation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleMul(cmd, args[0], args[1], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json for JSON, stdout when empty)")

	return cmd
}

func handleMul(cmd *cobra.Command, pathA, pathB, output string) error {
	ctx := cmd.Context()
	c := configFrom(ctx)
	log := logr.FromContextOrDiscard(ctx)
	table := symbol.NewTable()
	ioOpts := c.IOOptions(log)

	a, err := readSeries(pathA, table, log, ioOpts)
	if err != nil {
		return err
	}
	b, err := readSeries(pathB, table, log, ioOpts)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := series.Multiply(ctx, a, b, c.Policy(), c.MulOptions(log)...)
	if err != nil {
		return err
	}
	log.Info("multiplied", "a", a.Len(), "b", b.Len(), "terms", out.Len(), "elapsed", time.Since(start).String())

	return writeSeries(cmd.OutOrStdout(), output, out, ioOpts)
}
