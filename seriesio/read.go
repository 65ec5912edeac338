package seriesio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

// maxLineBytes bounds a single input line (large nested coefficients).
const maxLineBytes = 64 << 20

// header is the layout declared by the directives.
type header struct {
	slots    [symbol.NumEchelons][]*symbol.Symbol
	slotSeen [symbol.NumEchelons]bool
	kk       key.Kind
	ck       coeff.Kind
	inner    coeff.Kind
}

// Read parses a series in the text format from r.
// It returns the series, the skipped term lines, and a fatal error if the
// input could not be read or a directive was malformed.
//
// Errors:
//   - ErrDirective for unknown, malformed, repeated or late directives.
//   - symbol.ErrSymbolConflict when a declared symbol clashes with the table.
//   - I/O errors from r.
func Read(r io.Reader, opts ...Option) (*series.Series, []LineError, error) {
	o := gatherOptions(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	h := header{kk: key.KindMonomial, ck: coeff.KindDouble, inner: coeff.KindDouble}
	var (
		s       *series.Series
		skipped []LineError
	)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, commentMark):
			continue
		case strings.HasPrefix(line, directive):
			if s != nil {
				return nil, skipped, ioErrorf("Read", "line "+strconv.Itoa(n), fmt.Errorf("directive after terms: %w", ErrDirective))
			}
			if err := h.apply(line, o); err != nil {
				return nil, skipped, ioErrorf("Read", "line "+strconv.Itoa(n), err)
			}
		default:
			if s == nil {
				var err error
				if s, err = h.build(o); err != nil {
					return nil, skipped, ioErrorf("Read", "line "+strconv.Itoa(n), err)
				}
			}
			if err := insertLine(s, line, o); err != nil {
				o.log.Info("skipping malformed line", "line", n, "error", err.Error())
				skipped = append(skipped, LineError{Line: n, Text: line, Err: fmt.Errorf("%w: %w", ErrTermLine, err)})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, ioErrorf("Read", "scan", err)
	}
	if s == nil {
		var err error
		if s, err = h.build(o); err != nil {
			return nil, skipped, ioErrorf("Read", "eof", err)
		}
	}

	return s, skipped, nil
}

// ReadString is Read over a string.
func ReadString(text string, opts ...Option) (*series.Series, []LineError, error) {
	return Read(strings.NewReader(text), opts...)
}

func (h *header) apply(line string, o options) error {
	name, value, _ := strings.Cut(strings.TrimPrefix(line, directive), " ")
	value = strings.TrimSpace(value)
	var err error
	switch name {
	case "poly":
		err = h.declare(symbol.Poly, value, o)
	case "trig":
		err = h.declare(symbol.Trig, value, o)
	case "key":
		h.kk, err = key.ParseKind(value)
	case "coeff":
		h.ck, err = coeff.ParseKind(value)
	case "inner":
		h.inner, err = coeff.ParseKind(value)
		if err == nil && h.inner == coeff.KindNested {
			err = fmt.Errorf("nested inner kind: %w", ErrDirective)
		}
	default:
		return fmt.Errorf("unknown directive %q: %w", name, ErrDirective)
	}
	if err != nil {
		return fmt.Errorf("@%s %q: %w: %w", name, value, ErrDirective, err)
	}

	return nil
}

// declare registers the symbols of one slot: "x;y" or "x=0,1;y".
func (h *header) declare(e symbol.Echelon, value string, o options) error {
	if h.slotSeen[e] {
		return fmt.Errorf("slot %s declared twice: %w", e, ErrDirective)
	}
	h.slotSeen[e] = true
	if value == "" {
		return nil
	}
	for _, field := range strings.Split(value, o.format.KeySep) {
		name, evalStr, hasEval := strings.Cut(strings.TrimSpace(field), evalMark)
		var eval []float64
		if hasEval {
			for _, c := range strings.Split(evalStr, evalSep) {
				f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
				if err != nil {
					return fmt.Errorf("symbol %q evaluation: %w", name, ErrDirective)
				}
				eval = append(eval, f)
			}
		}
		sym, err := o.table.Register(name, eval...)
		if err != nil {
			return err
		}
		h.slots[e] = append(h.slots[e], sym)
	}

	return nil
}

func (h *header) build(o options) (*series.Series, error) {
	args, err := symbol.NewArguments(h.slots[symbol.Poly], h.slots[symbol.Trig])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirective, err)
	}
	opts := append([]series.Option{}, o.seriesOpts...)
	if h.ck == coeff.KindNested {
		opts = append(opts, series.WithInnerKind(h.inner))
	}

	return series.New(h.kk, h.ck, args, opts...), nil
}

// insertLine parses one term line into s.
func insertLine(s *series.Series, line string, o options) error {
	cfStr, keyStr, err := splitTerm(line, o.format.TermSep)
	if err != nil {
		return err
	}
	k, err := parseKey(s.KeyKind(), keyStr, o.format.KeySep)
	if err != nil {
		return err
	}
	cf, err := parseCoeff(s, cfStr, o)
	if err != nil {
		return err
	}

	return s.Insert(series.Term{Key: k, Coeff: cf})
}

// splitTerm separates "cf|key", skipping over a braced nested coefficient.
func splitTerm(line, sep string) (string, string, error) {
	if strings.HasPrefix(line, nestedOpen) {
		end := strings.Index(line, nestedClose)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated nested coefficient")
		}
		rest := line[end+1:]
		if !strings.HasPrefix(rest, sep) {
			return "", "", fmt.Errorf("missing %q after nested coefficient", sep)
		}
		return line[:end+1], strings.TrimSpace(rest[len(sep):]), nil
	}
	cf, k, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", fmt.Errorf("missing %q separator", sep)
	}

	return strings.TrimSpace(cf), strings.TrimSpace(k), nil
}

// parseKey reads a key; the empty string is the zero-width monomial.
func parseKey(kk key.Kind, s, sep string) (key.Key, error) {
	if s == "" && kk == key.KindMonomial {
		return key.NewMonomial(), nil
	}

	return key.ParseWith(kk, s, sep)
}

func parseCoeff(s *series.Series, text string, o options) (coeff.Coefficient, error) {
	if s.CoeffKind() != coeff.KindNested {
		return coeff.Parse(s.CoeffKind(), text)
	}
	if !strings.HasPrefix(text, nestedOpen) || !strings.HasSuffix(text, nestedClose) {
		return nil, fmt.Errorf("nested coefficient %q not braced", text)
	}
	p := series.New(key.KindMonomial, s.InnerKind(), s.Arguments(), o.seriesOpts...)
	body := strings.TrimSpace(text[len(nestedOpen) : len(text)-len(nestedClose)])
	if body != "" {
		for _, item := range strings.Split(body, o.format.ItemSep) {
			cfStr, keyStr, err := splitTerm(strings.TrimSpace(item), o.format.TermSep)
			if err != nil {
				return nil, err
			}
			k, err := parseKey(key.KindMonomial, keyStr, o.format.KeySep)
			if err != nil {
				return nil, err
			}
			cf, err := coeff.Parse(s.InnerKind(), cfStr)
			if err != nil {
				return nil, err
			}
			if err = p.Insert(series.Term{Key: k, Coeff: cf}); err != nil {
				return nil, err
			}
		}
	}

	n, err := series.NewNested(p)
	if err != nil {
		return nil, err
	}

	return n, nil
}
