// Package series: the Series container, a set of (coefficient, key)
// terms held in two synchronized views.
//
//   - a hashed unique index (xxhash of the key → collision bucket) for O(1)
//     duplicate detection during insertion and accumulation;
//   - an ordered index (red–black tree, key total order) for deterministic
//     iteration, printing and merge-style algorithms.
//
// All APIs take an internal sync.RWMutex, so concurrent readers are safe and
// writers are serialized. Multiplication reads its operands once into flat
// arrays and never holds a lock during the product loops.
//
// This file declares Term, Series and the New constructor.

package series

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/symbol"
)

// Term is one (coefficient, key) pair.
type Term struct {
	// Key is the monomial exponent vector or trigonometric frequency vector.
	Key key.Key

	// Coeff is the term coefficient.
	Coeff coeff.Coefficient
}

// String renders "cf|key".
func (t Term) String() string { return fmt.Sprintf("%s|%s", t.Coeff, t.Key) }

// Series is a sparse multivariate series over one key kind and one coefficient kind.
//
// Invariants:
//   - every stored key has exactly Width() positions (narrower keys are padded on insert);
//   - no two stored keys are equal, and no stored term is ignorable;
//   - trigonometric keys are canonical (first non-zero frequency positive).
type Series struct {
	mu sync.RWMutex

	kk    key.Kind
	ck    coeff.Kind
	inner coeff.Kind // scalar kind inside Nested coefficients
	args  symbol.Arguments
	width int

	tol float64
	log logr.Logger

	index map[uint64][]*Term
	order *treemap.Map // key.Key → *Term
}

// Echelon returns the argument slot governing keys of kind k.
func Echelon(k key.Kind) symbol.Echelon {
	if k == key.KindTrig {
		return symbol.Trig
	}

	return symbol.Poly
}

func keyComparator(a, b interface{}) int {
	return a.(key.Key).Compare(b.(key.Key))
}

// New creates an empty series with keys of kind kk and coefficients of kind ck
// over the argument layout args.
//
// For ck == coeff.KindNested the scalar kind of the nested polynomial
// coefficients is given with WithInnerKind (coeff.KindDouble by default).
func New(kk key.Kind, ck coeff.Kind, args symbol.Arguments, opts ...Option) *Series {
	o := gatherOptions(opts)
	s := &Series{
		kk:    kk,
		ck:    ck,
		inner: o.inner,
		args:  args,
		width: args.Len(Echelon(kk)),
		tol:   o.tol,
		log:   o.log,
		index: make(map[uint64][]*Term),
		order: treemap.NewWith(keyComparator),
	}
	if ck != coeff.KindNested {
		s.inner = ck
	}

	return s
}

// emptyLike returns an empty series with the receiver's kinds and settings over args.
func (s *Series) emptyLike(args symbol.Arguments) *Series {
	return New(s.kk, s.ck, args, s.sameOptions()...)
}

func (s *Series) sameOptions() []Option {
	return []Option{WithTolerance(s.tol), WithLogger(s.log), WithInnerKind(s.inner)}
}

// KeyKind reports the key variant.
func (s *Series) KeyKind() key.Kind { return s.kk }

// CoeffKind reports the coefficient variant.
func (s *Series) CoeffKind() coeff.Kind { return s.ck }

// InnerKind reports the scalar kind of nested coefficients (equal to CoeffKind
// for scalar series).
func (s *Series) InnerKind() coeff.Kind { return s.inner }

// Arguments returns the argument layout.
func (s *Series) Arguments() symbol.Arguments { return s.args }

// Width is the number of positions of every stored key.
func (s *Series) Width() int { return s.width }

// Tolerance is the numerical zero applied to Double coefficients.
func (s *Series) Tolerance() float64 { return s.tol }

// Logger returns the series logger.
func (s *Series) Logger() logr.Logger { return s.log }

// Len returns the number of terms.
func (s *Series) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.order.Size()
}

// IsEmpty reports whether the series is zero.
func (s *Series) IsEmpty() bool { return s.Len() == 0 }
