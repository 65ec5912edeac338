// SPDX-License-Identifier: MIT
// Package key: Kronecker coding.
//
// A Coding maps every key whose elements lie inside per-position inclusive
// ranges [lo_i, hi_i] to a single integer
//
//	raw(k)  = Σ k_i · place_i
//	index   = raw(k) − hmin,  hmin = Σ lo_i · place_i
//
// with place_0 = 1 and place_{i+1} = place_i · (hi_i − lo_i + 1). Because raw is
// linear, raw(a±b) = raw(a) ± raw(b), which lets a multiplier combine codes of
// factors directly. Range arithmetic is carried out in math/big and the place
// values are accumulated as overflow-checked uint256 products, so an oversized
// layout is detected before any machine integer wraps.

package key

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// maxCodeMagnitude bounds |raw| for every coded key and the total code count.
// Keeping all codes within ±2^62 guarantees that the sum or difference of two
// codes cannot overflow int64.
const maxCodeMagnitude = int64(1) << 62

// Coding is an immutable mixed-radix layout. Build it with NewCoding.
type Coding struct {
	lo    []int
	hi    []int
	width []int64
	place []int64
	hmin  int64
	size  int64
}

// Ranges scans every key once and returns the per-position minimum and maximum
// over width n (positions a key does not store count as 0). For an empty key
// set both vectors are all-zero.
// Complexity: O(len(keys)·n).
func Ranges(keys []Key, n int) (lo, hi []int) {
	lo = make([]int, n)
	hi = make([]int, n)
	for j, k := range keys {
		for i := 0; i < n; i++ {
			v := k.At(i)
			if j == 0 || v < lo[i] {
				lo[i] = v
			}
			if j == 0 || v > hi[i] {
				hi[i] = v
			}
		}
	}

	return lo, hi
}

// ProductRanges derives the per-position result ranges of multiplying any key
// in [lo1,hi1] by any key in [lo2,hi2]:
//   - Monomial: [lo1+lo2, hi1+hi2].
//   - Trig: the hull of the sum range and the difference range,
//     [min(lo1+lo2, lo1−hi2), max(hi1+hi2, hi1−lo2)].
//
// The arithmetic is exact (math/big).
func ProductRanges(k Kind, lo1, hi1, lo2, hi2 []int) (lo, hi []*big.Int) {
	n := len(lo1)
	if len(lo2) > n {
		n = len(lo2)
	}
	lo = make([]*big.Int, n)
	hi = make([]*big.Int, n)
	for i := 0; i < n; i++ {
		a0, a1 := big.NewInt(int64(at(lo1, i))), big.NewInt(int64(at(hi1, i)))
		b0, b1 := big.NewInt(int64(at(lo2, i))), big.NewInt(int64(at(hi2, i)))
		sumLo := new(big.Int).Add(a0, b0)
		sumHi := new(big.Int).Add(a1, b1)
		if k != KindTrig {
			lo[i], hi[i] = sumLo, sumHi
			continue
		}
		diffLo := new(big.Int).Sub(a0, b1)
		diffHi := new(big.Int).Sub(a1, b0)
		lo[i], hi[i] = sumLo, sumHi
		if diffLo.Cmp(lo[i]) < 0 {
			lo[i] = diffLo
		}
		if diffHi.Cmp(hi[i]) > 0 {
			hi[i] = diffHi
		}
	}

	return lo, hi
}

// NewCoding builds the mixed-radix layout for the inclusive ranges [lo_i, hi_i].
//
// Errors:
//   - ErrBadRange if len(lo) != len(hi) or some lo_i > hi_i.
//   - ErrOverflow if the total code count or any code bound leaves ±2^62.
//
// Complexity: O(n) big-integer operations.
func NewCoding(lo, hi []*big.Int) (*Coding, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("key.NewCoding: %d minima vs %d maxima: %w", len(lo), len(hi), ErrBadRange)
	}
	n := len(lo)
	c := &Coding{
		lo:    make([]int, n),
		hi:    make([]int, n),
		width: make([]int64, n),
		place: make([]int64, n),
	}

	limit := uint256.NewInt(uint64(maxCodeMagnitude))
	ck := uint256.NewInt(1) // running place value
	hmin := new(big.Int)
	one := big.NewInt(1)
	for i := 0; i < n; i++ {
		if lo[i].Cmp(hi[i]) > 0 {
			return nil, fmt.Errorf("key.NewCoding: position %d: [%s,%s]: %w", i, lo[i], hi[i], ErrBadRange)
		}
		if !lo[i].IsInt64() || !hi[i].IsInt64() {
			return nil, fmt.Errorf("key.NewCoding: position %d bounds: %w", i, ErrOverflow)
		}
		w := new(big.Int).Sub(hi[i], lo[i])
		w.Add(w, one)
		wu, overflow := uint256.FromBig(w)
		if overflow {
			return nil, fmt.Errorf("key.NewCoding: position %d width: %w", i, ErrOverflow)
		}

		c.lo[i] = int(lo[i].Int64())
		c.hi[i] = int(hi[i].Int64())
		c.place[i] = int64(ck.Uint64())
		c.width[i] = int64(wu.Uint64())
		hmin.Add(hmin, new(big.Int).Mul(lo[i], new(big.Int).SetUint64(ck.Uint64())))

		next, overflow := new(uint256.Int).MulOverflow(ck, wu)
		if overflow || next.Gt(limit) {
			return nil, fmt.Errorf("key.NewCoding: code range beyond position %d: %w", i, ErrOverflow)
		}
		ck = next
	}

	size := int64(ck.Uint64())
	hmax := new(big.Int).Add(hmin, big.NewInt(size-1))
	if !within(hmin) || !within(hmax) {
		return nil, fmt.Errorf("key.NewCoding: code bounds [%s,%s]: %w", hmin, hmax, ErrOverflow)
	}
	c.hmin = hmin.Int64()
	c.size = size

	return c, nil
}

func within(x *big.Int) bool {
	return x.IsInt64() && x.Int64() <= maxCodeMagnitude && x.Int64() >= -maxCodeMagnitude
}

// Fits reports whether every key inside [lo,hi] has a raw code within ±2^62.
// Multipliers must check it for each input before combining raw codes.
func (c *Coding) Fits(lo, hi []int) bool {
	rmin, rmax := new(big.Int), new(big.Int)
	for i := range c.place {
		p := big.NewInt(c.place[i])
		rmin.Add(rmin, new(big.Int).Mul(big.NewInt(int64(at(lo, i))), p))
		rmax.Add(rmax, new(big.Int).Mul(big.NewInt(int64(at(hi, i))), p))
	}
	// positions beyond the coding width must be zero
	for i := len(c.place); i < len(lo) || i < len(hi); i++ {
		if at(lo, i) != 0 || at(hi, i) != 0 {
			return false
		}
	}

	return within(rmin) && within(rmax)
}

// Width is the number of coded positions.
func (c *Coding) Width() int { return len(c.place) }

// Size is the number of distinct codes, hmax − hmin + 1.
func (c *Coding) Size() int64 { return c.size }

// Min returns the raw code of the smallest coded key.
func (c *Coding) Min() int64 { return c.hmin }

// Place returns a copy of the place values.
func (c *Coding) Place() []int64 {
	out := make([]int64, len(c.place))
	copy(out, c.place)

	return out
}

// Raw computes Σ k_i·place_i. The caller guarantees k lies in a range accepted by Fits.
func (c *Coding) Raw(k Key) int64 {
	var r int64
	for i, p := range c.place {
		r += int64(k.At(i)) * p
	}

	return r
}

// Index maps a raw code to its zero-based slot in [0, Size).
func (c *Coding) Index(raw int64) int64 { return raw - c.hmin }

// Encode is Index(Raw(k)).
func (c *Coding) Encode(k Key) int64 { return c.Raw(k) - c.hmin }

// Contains reports whether a raw code addresses a slot of this layout.
func (c *Coding) Contains(raw int64) bool {
	idx := raw - c.hmin
	return idx >= 0 && idx < c.size
}

// Decode inverts Encode: successive division by each position's width,
// adding back the position minimum. For KindMonomial cos is ignored.
func (c *Coding) Decode(k Kind, idx int64, cos bool) Key {
	e := make([]int, len(c.place))
	for i, w := range c.width {
		e[i] = c.lo[i] + int(idx%w)
		idx /= w
	}
	if k == KindTrig {
		return Trig{e: e, cos: cos}
	}

	return Monomial{e: e}
}
