package seriesio

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/symbol"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonSeries struct {
	Key   string     `json:"key"`
	Coeff string     `json:"coeff"`
	Inner string     `json:"inner,omitempty"`
	Args  jsonArgs   `json:"args"`
	Terms []jsonTerm `json:"terms"`
}

type jsonArgs struct {
	Poly []string `json:"poly"`
	Trig []string `json:"trig"`
}

type jsonTerm struct {
	C string `json:"c"`
	K string `json:"k"`
}

// MarshalJSON encodes s. Coefficients and keys use their text-format strings.
func MarshalJSON(s *series.Series, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts)
	args := s.Arguments()
	doc := jsonSeries{
		Key:   s.KeyKind().String(),
		Coeff: s.CoeffKind().String(),
		Args:  jsonArgs{Poly: args.Names(symbol.Poly), Trig: args.Names(symbol.Trig)},
		Terms: make([]jsonTerm, 0, s.Len()),
	}
	if s.CoeffKind() == coeff.KindNested {
		doc.Inner = s.InnerKind().String()
	}
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		doc.Terms = append(doc.Terms, jsonTerm{C: formatCoeff(cf, o), K: key.Format(k, o.format.KeySep)})
		return true
	})

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, ioErrorf("MarshalJSON", "encode", err)
	}

	return b, nil
}

// UnmarshalJSON decodes a series written by MarshalJSON. Symbols are
// registered in the table given by WithTable. Unlike Read, any malformed
// term fails the whole document.
//
// Errors:
//   - ErrJSON for undecodable documents, unknown kinds or malformed terms.
func UnmarshalJSON(data []byte, opts ...Option) (*series.Series, error) {
	o := gatherOptions(opts)
	var doc jsonSeries
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ioErrorf("UnmarshalJSON", "decode", fmt.Errorf("%w: %w", ErrJSON, err))
	}

	h := header{inner: coeff.KindDouble}
	var err error
	if h.kk, err = key.ParseKind(doc.Key); err != nil {
		return nil, ioErrorf("UnmarshalJSON", "key", fmt.Errorf("%w: %w", ErrJSON, err))
	}
	if h.ck, err = coeff.ParseKind(doc.Coeff); err != nil {
		return nil, ioErrorf("UnmarshalJSON", "coeff", fmt.Errorf("%w: %w", ErrJSON, err))
	}
	if doc.Inner != "" {
		if h.inner, err = coeff.ParseKind(doc.Inner); err != nil || h.inner == coeff.KindNested {
			return nil, ioErrorf("UnmarshalJSON", "inner", ErrJSON)
		}
	}
	for e, names := range [symbol.NumEchelons][]string{doc.Args.Poly, doc.Args.Trig} {
		for _, n := range names {
			sym, ok := o.table.Lookup(n)
			if !ok {
				if sym, err = o.table.Register(n); err != nil {
					return nil, ioErrorf("UnmarshalJSON", "args", fmt.Errorf("%w: %w", ErrJSON, err))
				}
			}
			h.slots[e] = append(h.slots[e], sym)
		}
	}

	s, err := h.build(o)
	if err != nil {
		return nil, ioErrorf("UnmarshalJSON", "args", fmt.Errorf("%w: %w", ErrJSON, err))
	}
	for i, t := range doc.Terms {
		k, err := parseKey(h.kk, t.K, o.format.KeySep)
		if err == nil {
			var cf coeff.Coefficient
			if cf, err = parseCoeff(s, t.C, o); err == nil {
				err = s.Insert(series.Term{Key: k, Coeff: cf})
			}
		}
		if err != nil {
			return nil, ioErrorf("UnmarshalJSON", fmt.Sprintf("term %d", i), fmt.Errorf("%w: %w", ErrJSON, err))
		}
	}

	return s, nil
}
