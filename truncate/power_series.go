package truncate

import (
	"errors"
	"fmt"
	"math"
)

// Stats summarises the series a power-series expansion is built from.
type Stats struct {
	// Empty is true for the zero series.
	Empty bool

	// Graded is true when the series has a degree (monomial keys or nested coefficients).
	Graded bool

	// MinDegree is the minimum (partial) degree under the policy's degree mode.
	MinDegree int

	// Norm is the sum of coefficient norms.
	Norm float64
}

// PowerSeriesIterations returns how many terms x^start, x^(start+step), ...
// of a power series in x stay below the policy's limits, i.e. the number of
// iterations an expansion such as 1/(1+x) or exp(x) needs.
//
// Degree criterion: ceil((limit/minDegree − start)/step), never negative.
// Norm criterion: the count of k >= 0 with norm^(start+k·step) >= threshold.
// The degree criterion is tried first and the norm criterion second; when
// neither is effective the error carries both reasons.
//
// Errors:
//   - ErrBadStep when step <= 0 or start < 0.
//   - ErrIneffective when no criterion can bound the expansion.
func (p Policy) PowerSeriesIterations(s Stats, start, step int) (int, error) {
	if step <= 0 || start < 0 {
		return 0, fmt.Errorf("truncate.PowerSeriesIterations(start=%d, step=%d): %w", start, step, ErrBadStep)
	}
	n, errDeg := p.degreeIterations(s, start, step)
	if errDeg == nil {
		return n, nil
	}
	n, errNorm := p.normIterations(s, start, step)
	if errNorm == nil {
		return n, nil
	}

	return 0, fmt.Errorf("truncate.PowerSeriesIterations: %w", errors.Join(errDeg, errNorm))
}

func (p Policy) degreeIterations(s Stats, start, step int) (int, error) {
	switch {
	case p.mode == Inactive:
		return 0, fmt.Errorf("degree: criterion inactive: %w", ErrIneffective)
	case !s.Graded:
		return 0, fmt.Errorf("degree: series has no degree: %w", ErrIneffective)
	case s.Empty:
		return 0, nil
	case s.MinDegree <= 0:
		return 0, fmt.Errorf("degree: minimum degree %d is not positive: %w", s.MinDegree, ErrIneffective)
	case p.degree < 0:
		return 0, fmt.Errorf("degree: negative limit %d: %w", p.degree, ErrIneffective)
	}

	// count k >= 0 with (start + k·step)·minDeg < limit
	num := int64(p.degree) - int64(start)*int64(s.MinDegree)
	den := int64(step) * int64(s.MinDegree)
	if num <= 0 {
		return 0, nil
	}

	return int((num + den - 1) / den), nil
}

func (p Policy) normIterations(s Stats, start, step int) (int, error) {
	switch {
	case p.normLimit <= 0:
		return 0, fmt.Errorf("norm: criterion inactive: %w", ErrIneffective)
	case s.Empty || s.Norm == 0:
		return 0, nil
	case s.Norm >= 1:
		return 0, fmt.Errorf("norm: series norm %g is not below 1: %w", s.Norm, ErrIneffective)
	}

	// norm^e >= limit  ⇔  e <= ln(limit)/ln(norm)
	e := math.Log(p.normLimit) / math.Log(s.Norm)
	if e < float64(start) {
		return 0, nil
	}

	return int(math.Floor((e-float64(start))/float64(step))) + 1, nil
}
