package series

import (
	"context"
	"strconv"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
	"github.com/katalvlaran/lvseries/truncate"
)

// Pow returns s^n under p by repeated squaring. s^0 is the identity series.
// The result holds exactly the terms of the untruncated power that p admits,
// because degrees add under multiplication.
//
// Errors:
//   - ErrNegativePower if n < 0.
//   - any error of Multiply.
//
// Complexity: O(log n) multiplications.
func Pow(ctx context.Context, s *Series, n int, p truncate.Policy, opts ...MulOption) (*Series, error) {
	if n < 0 {
		return nil, seriesErrorf("Pow", strconv.Itoa(n), ErrNegativePower)
	}
	o := gatherMulOptions(opts)
	if !o.logSet {
		o.log = s.log
	}
	if o.memLimit == 0 {
		o.memLimit = memoryBudget()
	}

	var result *Series
	base := s
	for e := n; e > 0; e >>= 1 {
		var err error
		if e&1 == 1 {
			if result == nil {
				result = base
			} else if result, err = multiply(ctx, result, base, p, o); err != nil {
				return nil, err
			}
		}
		if e > 1 {
			if base, err = multiply(ctx, base, base, p, o); err != nil {
				return nil, err
			}
		}
	}
	if result == nil {
		var err error
		if result, err = One(s.kk, s.ck, s.args, s.sameOptions()...); err != nil {
			return nil, err
		}
	}

	return result.Truncate(p), nil
}

// Truncate returns a copy of s without the terms p rejects.
func (s *Series) Truncate(p truncate.Policy) *Series {
	b := p.Bind(s.args, s.kk, s.ck)
	out := s.emptyLike(s.args)
	s.Each(func(k key.Key, cf coeff.Coefficient) bool {
		if b.AcceptTerm(k, cf) {
			out.accumulate(k, cf.Clone())
		}
		return true
	})

	return out
}
