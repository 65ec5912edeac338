// SPDX-License-Identifier: MIT
// Package series: series multiplication.
//
// Multiply runs one multiplication through the stages
//
//	validate → align layouts → cache operands → bind truncation & sort
//	→ coding viability → {vector-coded | hash-coded | plain} → drain → halve
//
// Stage 1 (cache): both operands are copied once into flat arrays of keys,
// coefficients and truncation measures; the product loops work on indices.
//
// Stage 2 (order): each operand gets a traversal order under which the
// truncation break test is monotonic, so both loops may stop early.
//
// Stage 3 (coding): per-position key ranges give the product ranges (exact
// arithmetic), from which a Kronecker coding is built. If the coded range is
// representable, products are accumulated by integer code, in a dense array
// when it fits the memory budget or in a hash map otherwise. Coding failures
// are absorbed by falling back to the plain path, which accumulates into a
// hashed working set of full keys.
//
// Stage 4 (drain): accumulated results are decoded, canonicalized, filtered by
// the per-result truncation test and inserted. Trigonometric products carry
// the Werner factor ½, applied once per result term after all branches
// reaching the same canonical key have been summed.
//
// Parallelism: the outer loop is dealt round-robin to Threads workers, each
// with a private accumulator; accumulators are drained in worker order.
// Cancellation: ctx is checked once per outer row.

package series

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/truncate"
)

// Multiply returns a·b under the truncation policy p.
// Operands are aligned to the union of their argument layouts first.
//
// Errors:
//   - ErrKeyKind, ErrCoefficientKind for incompatible operands.
//   - coefficient arithmetic errors (e.g. coeff.ErrInexact for odd Integer
//     products under trigonometric keys).
//   - ctx.Err() when ctx is cancelled.
//
// Complexity: O(n·m) coefficient products at most; fewer under truncation.
func Multiply(ctx context.Context, a, b *Series, p truncate.Policy, opts ...MulOption) (*Series, error) {
	o := gatherMulOptions(opts)
	if !o.logSet {
		o.log = a.log
	}
	if o.memLimit == 0 {
		o.memLimit = memoryBudget()
	}

	return multiply(ctx, a, b, p, o)
}

// Mul is Multiply(ctx, s, o, p, opts...).
func (s *Series) Mul(ctx context.Context, o *Series, p truncate.Policy, opts ...MulOption) (*Series, error) {
	return Multiply(ctx, s, o, p, opts...)
}

func multiply(ctx context.Context, a, b *Series, p truncate.Policy, o mulOptions) (*Series, error) {
	if err := checkCompatible("Multiply", a, b); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x, y, err := alignPair(a, b)
	if err != nil {
		return nil, err
	}

	out := x.emptyLike(x.args)
	bound := p.Bind(x.args, x.kk, x.ck)
	m := &multiplier{
		ctx:   ctx,
		o:     o,
		kk:    x.kk,
		width: x.width,
		bound: bound,
		env:   &mulEnv{ctx: ctx, p: p, o: innerOptions(o)},
		in:    [2]operand{cacheOperand(x, bound), cacheOperand(y, bound)},
		out:   out,
	}
	if len(m.in[0].keys) == 0 || len(m.in[1].keys) == 0 {
		return out, nil
	}
	m.workers = o.threads
	if m.workers > len(m.in[0].keys) {
		m.workers = len(m.in[0].keys)
	}
	if err = m.run(); err != nil {
		return nil, err
	}

	return out, nil
}

// operand is the flat, index-addressed cache of one factor.
type operand struct {
	keys  []key.Key
	cfs   []coeff.Coefficient
	meas  []truncate.Measure
	order []int
	raw   []int64
	cos   []bool
}

func cacheOperand(s *Series, b *truncate.Bound) operand {
	ts := s.snapshot()
	op := operand{
		keys: make([]key.Key, len(ts)),
		cfs:  make([]coeff.Coefficient, len(ts)),
		meas: make([]truncate.Measure, len(ts)),
	}
	for i, t := range ts {
		op.keys[i] = t.Key
		op.cfs[i] = t.Coeff
		op.meas[i] = b.Measure(t.Key, t.Coeff)
	}
	op.order = b.Order(op.meas)

	return op
}

type multiplier struct {
	ctx     context.Context
	o       mulOptions
	kk      key.Kind
	width   int
	bound   *truncate.Bound
	env     *mulEnv
	in      [2]operand
	out     *Series
	workers int
}

func (m *multiplier) run() error {
	alg := m.o.algorithm
	var c *key.Coding
	if alg != Plain {
		var err error
		if c, err = m.coding(); err != nil {
			m.o.log.V(1).Info("coded multiplication not viable, using plain", "requested", alg.String(), "reason", err.Error())
			alg = Plain
		} else {
			alg = m.pickCoded(alg, c)
		}
	}

	size := int64(0)
	if c != nil {
		size = c.Size()
	}
	m.o.log.V(1).Info("multiplying",
		"algorithm", alg.String(),
		"terms", [2]int{len(m.in[0].keys), len(m.in[1].keys)},
		"codes", size,
		"workers", m.workers,
		"truncation", m.bound.Policy().String())

	var err error
	switch alg {
	case VectorCoded:
		err = m.coded(c, true)
	case HashCoded:
		err = m.coded(c, false)
	default:
		err = m.plain()
	}
	if err != nil {
		return err
	}

	return m.finish()
}

// pickCoded resolves Automatic/VectorCoded against the memory budget.
func (m *multiplier) pickCoded(requested Algorithm, c *key.Coding) Algorithm {
	if requested == HashCoded {
		return HashCoded
	}
	flavours := key.ResultsPerProduct(m.kk)
	if denseFits(c.Size(), flavours, m.workers, m.o.memLimit) {
		return VectorCoded
	}
	if denseFits(c.Size(), flavours, 1, m.o.memLimit) {
		// fewer private arrays instead of giving up the dense path
		per := c.Size() * int64(flavours) * denseCellBytes
		m.workers = int(m.o.memLimit / per)
		return VectorCoded
	}
	if requested == VectorCoded {
		m.o.log.V(1).Info("dense accumulator exceeds memory budget, using hash_coded",
			"codes", c.Size(), "limit", m.o.memLimit)
	}

	return HashCoded
}

// coding builds the Kronecker coding of the product and the raw codes of both operands.
func (m *multiplier) coding() (*key.Coding, error) {
	a, b := &m.in[0], &m.in[1]
	lo1, hi1 := key.Ranges(a.keys, m.width)
	lo2, hi2 := key.Ranges(b.keys, m.width)
	plo, phi := key.ProductRanges(m.kk, lo1, hi1, lo2, hi2)
	c, err := key.NewCoding(plo, phi)
	if err != nil {
		return nil, err
	}
	if !c.Fits(lo1, hi1) || !c.Fits(lo2, hi2) {
		return nil, fmt.Errorf("series: operand codes: %w", key.ErrOverflow)
	}
	for _, op := range []*operand{a, b} {
		op.raw = make([]int64, len(op.keys))
		if m.kk == key.KindTrig {
			op.cos = make([]bool, len(op.keys))
		}
		for i, k := range op.keys {
			op.raw[i] = c.Raw(k)
			if op.cos != nil {
				op.cos[i] = k.(key.Trig).Cos()
			}
		}
	}

	return c, nil
}

// parallel runs work for every worker index and waits.
func (m *multiplier) parallel(work func(ctx context.Context, w int) error) error {
	if m.workers <= 1 {
		return work(m.ctx, 0)
	}
	g, gctx := errgroup.WithContext(m.ctx)
	for w := 0; w < m.workers; w++ {
		w := w
		g.Go(func() error { return work(gctx, w) })
	}

	return g.Wait()
}

// rows calls fn for every admissible index pair (i, j) of the outer rows
// owned by worker w, honoring the truncation break and discard tests.
func (m *multiplier) rows(ctx context.Context, w int, fn func(i, j int) error) error {
	a, b := &m.in[0], &m.in[1]
	active := m.bound.Active()
	first := b.order[0]
	for x := w; x < len(a.order); x += m.workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		i := a.order[x]
		if active && m.bound.Skip(a.meas[i], b.meas[first]) {
			break
		}
		for _, j := range b.order {
			if active {
				if m.bound.Skip(a.meas[i], b.meas[j]) {
					break
				}
				if m.bound.Discard(a.meas[i], b.meas[j]) {
					continue
				}
			}
			if err := fn(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// plain multiplies with full keys, accumulating into hashed working sets.
func (m *multiplier) plain() error {
	sets := make([]*workset, m.workers)
	err := m.parallel(func(ctx context.Context, w int) error {
		ws := newWorkset()
		sets[w] = ws
		a, b := &m.in[0], &m.in[1]
		var prods key.Products

		return m.rows(ctx, w, func(i, j int) error {
			if err := key.Multiply(a.keys[i], b.keys[j], &prods); err != nil {
				return err
			}
			for r := 0; r < prods.Len(); r++ {
				k := prods.Key(r)
				if k.IsIgnorable() {
					continue
				}
				if err := ws.add(k, prods.Sign(r), a.cfs[i], b.cfs[j], m.env); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	for _, ws := range sets {
		for _, t := range ws.terms {
			m.emit(t.Key, t.Coeff)
		}
	}

	return nil
}

// werner returns the result flavour (0 cosine, 1 sine) and the signs of the
// difference and sum branches for factors with the given flavours.
func werner(cosA, cosB bool) (flavour, diff, sum int) {
	switch {
	case cosA && cosB:
		return 0, 1, 1
	case !cosA && !cosB:
		return 0, 1, -1
	case !cosA && cosB:
		return 1, 1, 1
	default:
		return 1, -1, 1
	}
}

// coded multiplies by integer codes into dense or hashed accumulators.
func (m *multiplier) coded(c *key.Coding, dense bool) error {
	flavours := key.ResultsPerProduct(m.kk)
	accs := make([]accumulator, m.workers)
	err := m.parallel(func(ctx context.Context, w int) error {
		var acc accumulator
		if dense {
			acc = newDenseAccumulator(c.Size(), flavours)
		} else {
			acc = newHashAccumulator(flavours)
		}
		accs[w] = acc
		a, b := &m.in[0], &m.in[1]
		zero := a.cfs[0]
		hmin := c.Min()

		if m.kk != key.KindTrig {
			return m.rows(ctx, w, func(i, j int) error {
				return acc.at(0, a.raw[i]+b.raw[j]-hmin, zero).AddProduct(a.cfs[i], b.cfs[j], 1, m.env)
			})
		}

		return m.rows(ctx, w, func(i, j int) error {
			f, sd, ss := werner(a.cos[i], b.cos[j])
			if err := acc.at(f, a.raw[i]-b.raw[j]-hmin, zero).AddProduct(a.cfs[i], b.cfs[j], sd, m.env); err != nil {
				return err
			}
			return acc.at(f, a.raw[i]+b.raw[j]-hmin, zero).AddProduct(a.cfs[i], b.cfs[j], ss, m.env)
		})
	})
	if err != nil {
		return err
	}

	for f := 0; f < flavours; f++ {
		cos := f == 0
		for _, acc := range accs {
			acc.each(f, func(idx int64, cf coeff.Coefficient) {
				k, sign := c.Decode(m.kk, idx, cos).Canonical()
				if k.IsIgnorable() {
					return
				}
				if sign < 0 {
					cf.Negate()
				}
				m.emit(k, cf)
			})
		}
	}

	return nil
}

// emit applies the per-result truncation test and inserts (k, cf), taking
// ownership of cf. k is padded and canonical.
func (m *multiplier) emit(k key.Key, cf coeff.Coefficient) {
	if cf.IsIgnorable(m.out.tol) || !m.bound.AcceptTerm(k, cf) {
		return
	}
	m.out.accumulate(k, cf)
}

// finish applies the Werner factor ½ to trigonometric results.
func (m *multiplier) finish() error {
	if m.kk != key.KindTrig {
		return nil
	}

	return m.out.divideInPlace(2)
}

// ---------- accumulators ----------

// workset is the hashed working set of the plain path.
type workset struct {
	buckets map[uint64][]int
	terms   []Term
}

func newWorkset() *workset { return &workset{buckets: make(map[uint64][]int)} }

// add accumulates sign·a·b under k.
func (ws *workset) add(k key.Key, sign int, a, b coeff.Coefficient, env coeff.Env) error {
	h := k.Hash()
	for _, idx := range ws.buckets[h] {
		if ws.terms[idx].Key.Equal(k) {
			return ws.terms[idx].Coeff.AddProduct(a, b, sign, env)
		}
	}
	cf := a.Zero()
	if err := cf.AddProduct(a, b, sign, env); err != nil {
		return err
	}
	ws.buckets[h] = append(ws.buckets[h], len(ws.terms))
	ws.terms = append(ws.terms, Term{Key: k, Coeff: cf})

	return nil
}

// accumulator collects coded products per flavour.
type accumulator interface {
	// at returns the slot for idx, creating it from zero.Zero() on first use.
	at(flavour int, idx int64, zero coeff.Coefficient) coeff.Coefficient

	// each visits populated slots in ascending idx.
	each(flavour int, fn func(idx int64, cf coeff.Coefficient))
}

type denseAccumulator struct {
	slots [key.MaxProducts][]coeff.Coefficient
}

func newDenseAccumulator(size int64, flavours int) *denseAccumulator {
	d := &denseAccumulator{}
	for f := 0; f < flavours; f++ {
		d.slots[f] = make([]coeff.Coefficient, size)
	}

	return d
}

func (d *denseAccumulator) at(f int, idx int64, zero coeff.Coefficient) coeff.Coefficient {
	cf := d.slots[f][idx]
	if cf == nil {
		cf = zero.Zero()
		d.slots[f][idx] = cf
	}

	return cf
}

func (d *denseAccumulator) each(f int, fn func(int64, coeff.Coefficient)) {
	for idx, cf := range d.slots[f] {
		if cf != nil {
			fn(int64(idx), cf)
		}
	}
}

type hashAccumulator struct {
	slots [key.MaxProducts]map[int64]coeff.Coefficient
}

func newHashAccumulator(flavours int) *hashAccumulator {
	h := &hashAccumulator{}
	for f := 0; f < flavours; f++ {
		h.slots[f] = make(map[int64]coeff.Coefficient)
	}

	return h
}

func (h *hashAccumulator) at(f int, idx int64, zero coeff.Coefficient) coeff.Coefficient {
	cf, ok := h.slots[f][idx]
	if !ok {
		cf = zero.Zero()
		h.slots[f][idx] = cf
	}

	return cf
}

func (h *hashAccumulator) each(f int, fn func(int64, coeff.Coefficient)) {
	idxs := make([]int64, 0, len(h.slots[f]))
	for idx := range h.slots[f] {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
	for _, idx := range idxs {
		fn(idx, h.slots[f][idx])
	}
}

// ---------- nested coefficient products ----------

// mulEnv multiplies nested coefficients under the enclosing multiplication's
// policy and context, single-threaded.
type mulEnv struct {
	ctx context.Context
	p   truncate.Policy
	o   mulOptions
}

func innerOptions(o mulOptions) mulOptions {
	o.threads = 1
	o.log = o.log.V(1)

	return o
}

// MultiplyCoefficients implements coeff.Env.
func (e *mulEnv) MultiplyCoefficients(a, b coeff.Coefficient) (coeff.Coefficient, error) {
	x, okA := a.(*Nested)
	y, okB := b.(*Nested)
	if !okA || !okB {
		return nil, seriesErrorf("MultiplyCoefficients", a.Kind().String()+","+b.Kind().String(), ErrCoefficientKind)
	}
	r, err := multiply(e.ctx, x.s, y.s, e.p, e.o)
	if err != nil {
		return nil, err
	}

	return &Nested{s: r}, nil
}
