package key

import (
	"strconv"
	"strings"
)

// DefaultSeparator separates key elements in the string form.
const DefaultSeparator = ";"

// Flavour characters of the trig string form.
const (
	flavourCos = "c"
	flavourSin = "s"
)

// Format renders k with the given element separator.
// Monomial: "e0;e1;...". Trig: "e0;e1;...;c" or "...;s".
func Format(k Key, sep string) string {
	var b strings.Builder
	for i := 0; i < k.Width(); i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(k.At(i)))
	}
	if t, ok := k.(Trig); ok {
		if t.Width() > 0 {
			b.WriteString(sep)
		}
		if t.cos {
			b.WriteString(flavourCos)
		} else {
			b.WriteString(flavourSin)
		}
	}

	return b.String()
}

// Parse reads a key of kind k using DefaultSeparator.
func Parse(k Kind, s string) (Key, error) { return ParseWith(k, s, DefaultSeparator) }

// ParseWith reads a key of kind k whose elements are separated by sep.
//
// Errors:
//   - ErrParse on empty input, non-integer elements or a missing/unknown flavour.
func ParseWith(k Kind, s, sep string) (Key, error) {
	if strings.TrimSpace(s) == "" {
		return nil, keyErrorf("Parse", s, ErrParse)
	}
	fields := strings.Split(s, sep)

	cos := false
	if k == KindTrig {
		last := strings.TrimSpace(fields[len(fields)-1])
		switch last {
		case flavourCos:
			cos = true
		case flavourSin:
		default:
			return nil, keyErrorf("Parse", s, ErrParse)
		}
		fields = fields[:len(fields)-1]
	}

	e := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, keyErrorf("Parse", s, ErrParse)
		}
		e[i] = v
	}

	if k == KindTrig {
		return Trig{e: e, cos: cos}, nil
	}

	return Monomial{e: e}, nil
}
