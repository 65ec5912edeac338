package commands

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// Bin is the total coefficient norm of the terms of one key degree.
type Bin struct {
	Degree int
	Norm   float64
	Terms  int
}

// Spectrum bins the terms of s by key degree, in ascending degree order.
func Spectrum(s *series.Series) []Bin {
	byDeg := make(map[int]*Bin)
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		d := k.Degree()
		b, ok := byDeg[d]
		if !ok {
			b = &Bin{Degree: d}
			byDeg[d] = b
		}
		b.Norm += cf.Norm()
		b.Terms++
		return true
	})
	out := make([]Bin, 0, len(byDeg))
	for _, b := range byDeg {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out
}

// NewSpectrumCmd returns the command printing (and optionally plotting) the
// degree spectrum of a series file.
func NewSpectrumCmd() *cobra.Command {
	var png string
	cmd := &cobra.Command{
		Use:   "spectrum A",
		Short: "Show coefficient norm by key degree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleSpectrum(cmd, args[0], png)
		},
	}
	cmd.Flags().StringVar(&png, "png", "", "also plot log10(norm) against degree into this image file")

	return cmd
}

func handleSpectrum(cmd *cobra.Command, path, png string) error {
	ctx := cmd.Context()
	c := configFrom(ctx)
	log := logr.FromContextOrDiscard(ctx)

	s, err := readSeries(path, symbol.NewTable(), log, c.IOOptions(log))
	if err != nil {
		return err
	}
	bins := Spectrum(s)
	if err = printSpectrum(cmd.OutOrStdout(), bins); err != nil {
		return err
	}
	if png == "" {
		return nil
	}
	log.V(1).Info("plotting spectrum", "bins", len(bins), "file", png)

	return plotSpectrum(bins, path, png)
}

func printSpectrum(w io.Writer, bins []Bin) error {
	for _, b := range bins {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%g\n", b.Degree, b.Terms, b.Norm); err != nil {
			return err
		}
	}

	return nil
}

func plotSpectrum(bins []Bin, title, file string) error {
	pts := make(plotter.XYs, 0, len(bins))
	for _, b := range bins {
		if b.Norm <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(b.Degree), Y: math.Log10(b.Norm)})
	}
	if len(pts) == 0 {
		return fmt.Errorf("spectrum plot: no term with a positive norm")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "degree"
	p.Y.Label.Text = "log10 norm"
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("spectrum plot: %w", err)
	}
	p.Add(plotter.NewGrid(), sc)

	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}
