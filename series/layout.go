package series

import (
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/symbol"
)

// Realign returns a copy of s laid out over args. Every symbol of s (in both
// slots) must be present in args; keys are remapped position by position,
// zero-filled where s had no symbol, and re-canonicalized. Nested coefficients
// are realigned recursively. This is the only way a series grows wider.
//
// Errors:
//   - ErrUnknownSymbol if args lacks a symbol of s.
func (s *Series) Realign(args symbol.Arguments) (*Series, error) {
	var maps [symbol.NumEchelons][]int
	for e := symbol.Echelon(0); e < symbol.NumEchelons; e++ {
		m, err := symbol.Mapping(s.args, args, e)
		if err != nil {
			return nil, seriesErrorf("Realign", args.String(), ErrUnknownSymbol)
		}
		maps[e] = m
	}

	out := s.emptyLike(args)
	m := maps[Echelon(s.kk)]
	for _, t := range s.snapshot() {
		cf := t.Coeff.Clone()
		if n, ok := cf.(*Nested); ok {
			r, err := n.s.Realign(args)
			if err != nil {
				return nil, err
			}
			n.s = r
		}
		k, sign := remap(t.Key, m, out.width).Canonical()
		if sign < 0 {
			cf.Negate()
		}
		out.accumulate(k, cf)
	}
	s.log.V(2).Info("series realigned", "from", s.args.String(), "to", args.String(), "terms", out.order.Size())

	return out, nil
}

// aligned returns s itself when it already uses args, else a realigned copy.
func (s *Series) aligned(args symbol.Arguments) (*Series, error) {
	if s.args.Equal(args) {
		return s, nil
	}

	return s.Realign(args)
}

// remap moves position i of k to position m[i] of a width-n key.
func remap(k key.Key, m []int, n int) key.Key {
	elems := make([]int, n)
	for i := 0; i < k.Width(); i++ {
		elems[m[i]] = k.At(i)
	}
	cos := false
	if t, ok := k.(key.Trig); ok {
		cos = t.Cos()
	}

	return key.FromElems(k.Kind(), cos, elems)
}

// alignPair merges the layouts of a and b and returns both operands over the union.
func alignPair(a, b *Series) (*Series, *Series, error) {
	if a.args.Equal(b.args) {
		return a, b, nil
	}
	args := a.args.Merge(b.args)
	x, err := a.aligned(args)
	if err != nil {
		return nil, nil, err
	}
	y, err := b.aligned(args)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// checkCompatible verifies both operands share key, coefficient and inner kinds.
func checkCompatible(method string, a, b *Series) error {
	if a.kk != b.kk {
		return seriesErrorf(method, a.kk.String()+","+b.kk.String(), ErrKeyKind)
	}
	if a.ck != b.ck || a.inner != b.inner {
		return seriesErrorf(method, a.ck.String()+","+b.ck.String(), ErrCoefficientKind)
	}

	return nil
}
