package key

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Kind enumerates the key variants.
type Kind uint8

const (
	// KindMonomial marks exponent vectors (polynomial slot).
	KindMonomial Kind = iota

	// KindTrig marks frequency vectors with a cosine/sine flavour (trigonometric slot).
	KindTrig
)

// String returns the lower-case kind name used by the file format.
func (k Kind) String() string {
	switch k {
	case KindMonomial:
		return "monomial"
	case KindTrig:
		return "trig"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "monomial":
		return KindMonomial, nil
	case "trig":
		return KindTrig, nil
	}

	return 0, keyErrorf("ParseKind", s, ErrParse)
}

// Key is the capability set shared by Monomial and Trig.
//
// Implementations are immutable; methods returning a Key never alias the
// receiver's storage.
type Key interface {
	// Kind reports the variant.
	Kind() Kind

	// Width is the number of explicitly stored positions.
	Width() int

	// At returns the element at position i, or 0 when i >= Width.
	At(i int) int

	// Degree is the sum of exponents (Monomial) or of absolute frequencies (Trig).
	Degree() int

	// PartialDegree sums the elements at the given positions; positions beyond
	// Width contribute 0.
	PartialDegree(positions []int) int

	// Pad returns a copy zero-extended to width n. Pad never truncates: n below
	// Width returns the key unchanged.
	Pad(n int) Key

	// IsIgnorable reports whether a term with this key is identically zero.
	IsIgnorable() bool

	// Canonical returns the canonical representative of the key and the sign
	// (+1 or −1) a coefficient must be multiplied by to keep the term unchanged.
	Canonical() (Key, int)

	// Hash is consistent with Equal (trailing zeros are ignored).
	Hash() uint64

	// Equal compares keys after implicit zero-extension.
	Equal(other Key) bool

	// Compare defines the total order of the ordered series view.
	Compare(other Key) int

	// String renders the key with the default separator.
	String() string
}

// significant returns the length of e without trailing zeros.
func significant(e []int) int {
	n := len(e)
	for n > 0 && e[n-1] == 0 {
		n--
	}

	return n
}

// hashElems hashes the significant prefix of e plus a tag byte.
func hashElems(e []int, tag byte) uint64 {
	var buf [8]byte
	d := xxhash.New()
	_, _ = d.Write([]byte{tag})
	for i, n := 0, significant(e); i < n; i++ {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(e[i])))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// equalElems compares two vectors under implicit zero-extension.
func equalElems(a, b []int) bool {
	n := significant(a)
	if n != significant(b) {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// compareElems orders two vectors lexicographically under zero-extension.
func compareElems(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		x, y := at(a, i), at(b, i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}

	return 0
}

func at(e []int, i int) int {
	if i < len(e) {
		return e[i]
	}

	return 0
}

func partial(e []int, positions []int) int {
	d := 0
	for _, p := range positions {
		d += at(e, p)
	}

	return d
}

func padElems(e []int, n int) []int {
	if n <= len(e) {
		out := make([]int, len(e))
		copy(out, e)
		return out
	}
	out := make([]int, n)
	copy(out, e)

	return out
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
