package key

// Monomial is an exponent vector: x0^e0 · x1^e1 · ... over the polynomial slot.
// The zero vector is the constant monomial and is never ignorable.
type Monomial struct {
	e []int
}

// NewMonomial copies exps into a new Monomial.
func NewMonomial(exps ...int) Monomial {
	e := make([]int, len(exps))
	copy(e, exps)

	return Monomial{e: e}
}

// Kind implements Key.
func (m Monomial) Kind() Kind { return KindMonomial }

// Width implements Key.
func (m Monomial) Width() int { return len(m.e) }

// At implements Key.
func (m Monomial) At(i int) int { return at(m.e, i) }

// Elems returns a copy of the exponents.
func (m Monomial) Elems() []int { return padElems(m.e, 0) }

// Degree is the total degree.
func (m Monomial) Degree() int {
	d := 0
	for _, x := range m.e {
		d += x
	}

	return d
}

// PartialDegree implements Key.
func (m Monomial) PartialDegree(positions []int) int { return partial(m.e, positions) }

// Pad implements Key.
func (m Monomial) Pad(n int) Key { return Monomial{e: padElems(m.e, n)} }

// IsIgnorable implements Key. Monomials are always significant.
func (m Monomial) IsIgnorable() bool { return false }

// Canonical implements Key; every monomial is canonical.
func (m Monomial) Canonical() (Key, int) { return m, 1 }

// Hash implements Key.
func (m Monomial) Hash() uint64 { return hashElems(m.e, 'm') }

// Equal implements Key.
func (m Monomial) Equal(other Key) bool {
	o, ok := other.(Monomial)
	return ok && equalElems(m.e, o.e)
}

// Compare orders monomials by total degree, then lexicographically.
// A Monomial sorts before any Trig key.
func (m Monomial) Compare(other Key) int {
	o, ok := other.(Monomial)
	if !ok {
		return -1
	}
	if c := cmpInt(m.Degree(), o.Degree()); c != 0 {
		return c
	}

	return compareElems(m.e, o.e)
}

// String implements Key.
func (m Monomial) String() string { return Format(m, DefaultSeparator) }

// mulMonomial writes a+b into out.
func mulMonomial(a, b Monomial, out *Products) {
	n := len(a.e)
	if len(b.e) > n {
		n = len(b.e)
	}
	e := make([]int, n)
	for i := range e {
		e[i] = at(a.e, i) + at(b.e, i)
	}
	out.push(Monomial{e: e}, 1)
}
