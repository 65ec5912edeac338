// SPDX-License-Identifier: MIT
// Package series: insertion and merge.
//
// Insert is the single write path of the container. It
//  1. checks key and coefficient kinds against the series;
//  2. rejects keys wider than the governing argument slot (ErrKeyTooWide) and
//     zero-extends narrower ones;
//  3. canonicalizes trigonometric keys, folding the sign into the coefficient;
//  4. drops ignorable keys (sin 0) and ignorable coefficients;
//  5. adds into an existing equal key in place, erasing the term if the sum
//     became ignorable, or stores a new term in both indexes.

package series

import (
	"sort"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
)

// Insert adds t to the series. The coefficient is copied; t is not retained.
//
// Errors:
//   - ErrKeyKind if t.Key is of the wrong variant.
//   - ErrCoefficientKind if t.Coeff is of the wrong variant (or a nested
//     coefficient with another scalar kind).
//   - ErrKeyTooWide if t.Key has more positions than the series width.
//   - ErrUnknownSymbol if a nested coefficient uses symbols the series lacks.
func (s *Series) Insert(t Term) error {
	k, cf, err := s.prepare(t, false)
	if err != nil || k == nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accumulate(k, cf)

	return nil
}

// Subtract inserts −t.
func (s *Series) Subtract(t Term) error {
	k, cf, err := s.prepare(t, true)
	if err != nil || k == nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accumulate(k, cf)

	return nil
}

// InsertBatch inserts ts in ascending key order. It stops at the first error;
// terms before it remain inserted.
func (s *Series) InsertBatch(ts []Term) error {
	sorted := make([]Term, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Compare(sorted[j].Key) < 0
	})
	for _, t := range sorted {
		if err := s.Insert(t); err != nil {
			return err
		}
	}

	return nil
}

// prepare validates t and returns the stored form of its key together with a
// private coefficient copy (negated when neg). A nil key means "nothing to insert".
func (s *Series) prepare(t Term, neg bool) (key.Key, coeff.Coefficient, error) {
	if t.Key == nil || t.Key.Kind() != s.kk {
		return nil, nil, seriesErrorf("Insert", termKind(t), ErrKeyKind)
	}
	if t.Coeff == nil || t.Coeff.Kind() != s.ck {
		return nil, nil, seriesErrorf("Insert", termKind(t), ErrCoefficientKind)
	}
	if t.Key.Width() > s.width {
		return nil, nil, seriesErrorf("Insert", t.Key.String(), ErrKeyTooWide)
	}

	k, sign := t.Key.Pad(s.width).Canonical()
	if k.IsIgnorable() || t.Coeff.IsIgnorable(s.tol) {
		return nil, nil, nil
	}

	cf := t.Coeff.Clone()
	if n, ok := cf.(*Nested); ok {
		if err := s.adoptNested(n); err != nil {
			return nil, nil, err
		}
	}
	if (sign < 0) != neg {
		cf.Negate()
	}

	return k, cf, nil
}

func termKind(t Term) string {
	kk, ck := "nil", "nil"
	if t.Key != nil {
		kk = t.Key.Kind().String()
	}
	if t.Coeff != nil {
		ck = t.Coeff.Kind().String()
	}

	return kk + "," + ck
}

// accumulate stores (k, cf) taking ownership of cf. k must be padded and
// canonical. Caller holds the write lock.
func (s *Series) accumulate(k key.Key, cf coeff.Coefficient) {
	h := k.Hash()
	bucket := s.index[h]
	for i, t := range bucket {
		if !t.Key.Equal(k) {
			continue
		}
		t.Coeff.AddAssign(cf)
		if t.Coeff.IsIgnorable(s.tol) {
			s.eraseAt(h, i)
		}

		return
	}
	if cf.IsIgnorable(s.tol) {
		return
	}
	t := &Term{Key: k, Coeff: cf}
	s.index[h] = append(bucket, t)
	s.order.Put(k, t)
}

// eraseAt removes bucket entry i of hash h from both indexes.
func (s *Series) eraseAt(h uint64, i int) {
	bucket := s.index[h]
	t := bucket[i]
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = nil
	if last == 0 {
		delete(s.index, h)
	} else {
		s.index[h] = bucket[:last]
	}
	s.order.Remove(t.Key)
}

// lookup returns the stored term for a padded canonical key. Caller holds a lock.
func (s *Series) lookup(k key.Key) *Term {
	for _, t := range s.index[k.Hash()] {
		if t.Key.Equal(k) {
			return t
		}
	}

	return nil
}

// MergeTerms adds (or, with subtract, subtracts) every term of other into s.
// Both series must share key and coefficient kinds; other's keys must fit
// s's layout (use Add/Sub for automatic argument merging).
func (s *Series) MergeTerms(other *Series, subtract bool) error {
	if other == s {
		other = other.Clone()
	}
	for _, t := range other.snapshot() {
		var err error
		if subtract {
			err = s.Subtract(t)
		} else {
			err = s.Insert(t)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// snapshot returns the stored terms in ascending order without copying
// coefficients. Callers must not mutate the returned coefficients.
func (s *Series) snapshot() []Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Term, 0, s.order.Size())
	it := s.order.Iterator()
	for it.Next() {
		out = append(out, *it.Value().(*Term))
	}

	return out
}
