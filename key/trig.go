package key

// Trig is a trigonometric key cos(k·θ) or sin(k·θ) over the trigonometric slot.
//
// Canonical form: the first non-zero frequency is positive. Multiplication
// results are returned canonical; Canonical converts arbitrary input.
type Trig struct {
	e   []int
	cos bool
}

// NewTrig copies freqs into a new Trig key with the given flavour.
func NewTrig(cos bool, freqs ...int) Trig {
	e := make([]int, len(freqs))
	copy(e, freqs)

	return Trig{e: e, cos: cos}
}

// Kind implements Key.
func (t Trig) Kind() Kind { return KindTrig }

// Width implements Key.
func (t Trig) Width() int { return len(t.e) }

// At implements Key.
func (t Trig) At(i int) int { return at(t.e, i) }

// Cos reports the flavour: true for cosine, false for sine.
func (t Trig) Cos() bool { return t.cos }

// Elems returns a copy of the frequencies.
func (t Trig) Elems() []int { return padElems(t.e, 0) }

// Degree is the trigonometric order Σ|k_i|.
func (t Trig) Degree() int {
	d := 0
	for _, x := range t.e {
		if x < 0 {
			x = -x
		}
		d += x
	}

	return d
}

// PartialDegree implements Key (signed sum at positions).
func (t Trig) PartialDegree(positions []int) int { return partial(t.e, positions) }

// Pad implements Key.
func (t Trig) Pad(n int) Key { return Trig{e: padElems(t.e, n), cos: t.cos} }

// IsIgnorable is true for sin(0), which vanishes identically.
func (t Trig) IsIgnorable() bool { return !t.cos && significant(t.e) == 0 }

// Canonical flips the frequency vector when its first non-zero entry is negative.
// cos is even, so the sign is +1; sin is odd, so the sign is −1.
func (t Trig) Canonical() (Key, int) {
	for _, x := range t.e {
		if x == 0 {
			continue
		}
		if x > 0 {
			return t, 1
		}
		e := make([]int, len(t.e))
		for i, y := range t.e {
			e[i] = -y
		}
		if t.cos {
			return Trig{e: e, cos: true}, 1
		}

		return Trig{e: e, cos: false}, -1
	}

	return t, 1
}

// Hash implements Key.
func (t Trig) Hash() uint64 {
	if t.cos {
		return hashElems(t.e, 'c')
	}

	return hashElems(t.e, 's')
}

// Equal implements Key.
func (t Trig) Equal(other Key) bool {
	o, ok := other.(Trig)
	return ok && t.cos == o.cos && equalElems(t.e, o.e)
}

// Compare orders cosines before sines, then by order, then lexicographically.
// Trig keys sort after every Monomial.
func (t Trig) Compare(other Key) int {
	o, ok := other.(Trig)
	if !ok {
		return 1
	}
	if t.cos != o.cos {
		if t.cos {
			return -1
		}
		return 1
	}
	if c := cmpInt(t.Degree(), o.Degree()); c != 0 {
		return c
	}

	return compareElems(t.e, o.e)
}

// String implements Key.
func (t Trig) String() string { return Format(t, DefaultSeparator) }

// mulTrig applies Werner's formulas; out receives the difference key first,
// then the sum key, both canonical, with their signs.
func mulTrig(a, b Trig, out *Products) {
	n := len(a.e)
	if len(b.e) > n {
		n = len(b.e)
	}
	diff := make([]int, n)
	sum := make([]int, n)
	for i := 0; i < n; i++ {
		x, y := at(a.e, i), at(b.e, i)
		diff[i] = x - y
		sum[i] = x + y
	}

	// sign of the (α−β) and (α+β) branches per flavour pair
	var cos bool
	var sDiff, sSum int
	switch {
	case a.cos && b.cos:
		cos, sDiff, sSum = true, 1, 1
	case !a.cos && !b.cos:
		cos, sDiff, sSum = true, 1, -1
	case !a.cos && b.cos:
		cos, sDiff, sSum = false, 1, 1
	default:
		cos, sDiff, sSum = false, -1, 1
	}

	kd, cd := Trig{e: diff, cos: cos}.Canonical()
	ks, cs := Trig{e: sum, cos: cos}.Canonical()
	out.push(kd, sDiff*cd)
	out.push(ks, sSum*cs)
}
