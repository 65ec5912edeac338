package seriesio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// Write renders s in the text format: directives, then one line per term in
// ascending key order. The output reads back to an equal series unless
// WithDecimalPlaces is in effect.
func Write(w io.Writer, s *series.Series, opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)
	f := o.format

	args := s.Arguments()
	for e := symbol.Echelon(0); e < symbol.NumEchelons; e++ {
		if args.Len(e) == 0 {
			continue
		}
		names := make([]string, 0, args.Len(e))
		for _, sym := range args.Slot(e) {
			names = append(names, formatSymbol(sym))
		}
		writeLine(bw, directive+e.String()+" "+strings.Join(names, f.KeySep))
	}
	writeLine(bw, directive+"key "+s.KeyKind().String())
	writeLine(bw, directive+"coeff "+s.CoeffKind().String())
	if s.CoeffKind() == coeff.KindNested {
		writeLine(bw, directive+"inner "+s.InnerKind().String())
	}
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		writeLine(bw, formatCoeff(cf, o)+f.TermSep+key.Format(k, f.KeySep))
		return true
	})

	if err := bw.Flush(); err != nil {
		return ioErrorf("Write", "flush", err)
	}

	return nil
}

// WriteString is Write into a string.
func WriteString(s *series.Series, opts ...Option) string {
	var b strings.Builder
	_ = Write(&b, s, opts...) // strings.Builder never fails

	return b.String()
}

func writeLine(w *bufio.Writer, line string) {
	_, _ = w.WriteString(line)
	_ = w.WriteByte('\n')
}

func formatSymbol(sym *symbol.Symbol) string {
	te := sym.TimeEval()
	if len(te) == 0 {
		return sym.Name()
	}
	parts := make([]string, len(te))
	for i, c := range te {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return sym.Name() + evalMark + strings.Join(parts, evalSep)
}

// formatCoeff renders a coefficient with the configured separators.
func formatCoeff(cf coeff.Coefficient, o options) string {
	n, ok := cf.(*series.Nested)
	if !ok {
		if o.places >= 0 {
			return Decimal(cf, o.places)
		}
		return cf.String()
	}
	ts := n.Series().Terms()
	items := make([]string, len(ts))
	for i, t := range ts {
		items[i] = formatCoeff(t.Coeff, o) + o.format.TermSep + key.Format(t.Key, o.format.KeySep)
	}

	return nestedOpen + strings.Join(items, o.format.ItemSep) + nestedClose
}
