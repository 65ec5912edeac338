package symbol

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Echelon indexes the argument slots of a series.
type Echelon int

const (
	// Poly is the slot of polynomial (monomial exponent) arguments.
	Poly Echelon = iota

	// Trig is the slot of trigonometric (frequency) arguments.
	Trig

	// NumEchelons is the number of slots.
	NumEchelons
)

// String names the echelon as in the file format.
func (e Echelon) String() string {
	switch e {
	case Poly:
		return "poly"
	case Trig:
		return "trig"
	default:
		return fmt.Sprintf("echelon(%d)", int(e))
	}
}

// Arguments is the per-echelon ordered list of symbols of a series.
// It is a value type; mutators return a new Arguments.
type Arguments struct {
	slots [NumEchelons][]*Symbol
}

// NewArguments builds an argument layout from the poly and trig slots.
//
// Errors:
//   - ErrDuplicateArgument if a name repeats inside one slot.
func NewArguments(poly, trig []*Symbol) (Arguments, error) {
	var a Arguments
	var err error
	if a, err = a.With(Poly, poly...); err != nil {
		return Arguments{}, err
	}

	return a.With(Trig, trig...)
}

func (a Arguments) check(e Echelon) {
	if e < 0 || e >= NumEchelons {
		panic(ErrBadEchelon)
	}
}

// Len returns the number of symbols in slot e.
func (a Arguments) Len(e Echelon) int {
	a.check(e)

	return len(a.slots[e])
}

// Slot returns a copy of slot e.
func (a Arguments) Slot(e Echelon) []*Symbol {
	a.check(e)
	out := make([]*Symbol, len(a.slots[e]))
	copy(out, a.slots[e])

	return out
}

// Names returns the names of slot e in order.
func (a Arguments) Names(e Echelon) []string {
	a.check(e)
	out := make([]string, len(a.slots[e]))
	for i, s := range a.slots[e] {
		out[i] = s.name
	}

	return out
}

// Index returns the position of name in slot e, or −1.
func (a Arguments) Index(e Echelon, name string) int {
	a.check(e)
	for i, s := range a.slots[e] {
		if s.name == name {
			return i
		}
	}

	return -1
}

// Positions returns, in ascending order, the positions in slot e whose symbol
// name belongs to names. Names absent from the slot are ignored.
func (a Arguments) Positions(e Echelon, names *set.Set[string]) []int {
	a.check(e)
	var out []int
	for i, s := range a.slots[e] {
		if names.Contains(s.name) {
			out = append(out, i)
		}
	}

	return out
}

// With appends syms to slot e.
//
// Errors:
//   - ErrDuplicateArgument if a name is already present in the slot.
func (a Arguments) With(e Echelon, syms ...*Symbol) (Arguments, error) {
	a.check(e)
	out := a.clone()
	seen := set.New[string](len(out.slots[e]) + len(syms))
	for _, s := range out.slots[e] {
		seen.Insert(s.name)
	}
	for _, s := range syms {
		if !seen.Insert(s.name) {
			return Arguments{}, fmt.Errorf("symbol.Arguments.With(%s, %q): %w", e, s.name, ErrDuplicateArgument)
		}
		out.slots[e] = append(out.slots[e], s)
	}

	return out, nil
}

func (a Arguments) clone() Arguments {
	var out Arguments
	for e := range a.slots {
		out.slots[e] = append([]*Symbol(nil), a.slots[e]...)
	}

	return out
}

// Merge returns the union layout: the receiver's symbols first (positions
// unchanged), then b's symbols not already present, in b's order.
// Complexity: O(Σ|slot|) with set lookups.
func (a Arguments) Merge(b Arguments) Arguments {
	out := a.clone()
	for e := range out.slots {
		have := set.New[string](len(out.slots[e]))
		for _, s := range out.slots[e] {
			have.Insert(s.name)
		}
		for _, s := range b.slots[e] {
			if have.Insert(s.name) {
				out.slots[e] = append(out.slots[e], s)
			}
		}
	}

	return out
}

// Mapping returns, for every position of slot e in from, the position of the
// same symbol in to.
//
// Errors:
//   - ErrNotFound if some symbol of from is missing in to.
func Mapping(from, to Arguments, e Echelon) ([]int, error) {
	from.check(e)
	out := make([]int, len(from.slots[e]))
	for i, s := range from.slots[e] {
		j := to.Index(e, s.name)
		if j < 0 {
			return nil, fmt.Errorf("symbol.Mapping(%s, %q): %w", e, s.name, ErrNotFound)
		}
		out[i] = j
	}

	return out, nil
}

// IsIdentity reports whether m maps every position onto itself.
func IsIdentity(m []int) bool {
	for i, j := range m {
		if i != j {
			return false
		}
	}

	return true
}

// Equal compares layouts by symbol names.
func (a Arguments) Equal(b Arguments) bool {
	for e := range a.slots {
		if len(a.slots[e]) != len(b.slots[e]) {
			return false
		}
		for i := range a.slots[e] {
			if a.slots[e][i].name != b.slots[e][i].name {
				return false
			}
		}
	}

	return true
}

// String renders "poly[x,y] trig[a]".
func (a Arguments) String() string {
	var b strings.Builder
	for e := range a.slots {
		if e > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Echelon(e).String())
		b.WriteByte('[')
		b.WriteString(strings.Join(a.Names(Echelon(e)), ","))
		b.WriteByte(']')
	}

	return b.String()
}
