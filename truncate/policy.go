package truncate

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-set/v2"
)

// Mode is the degree criterion of a Policy.
type Mode uint8

const (
	// Inactive disables degree truncation.
	Inactive Mode = iota

	// Degree truncates on total degree.
	Degree

	// PartialDegree truncates on the degree restricted to a symbol subset.
	PartialDegree
)

// String names the mode.
func (m Mode) String() string {
	switch m {
	case Inactive:
		return "inactive"
	case Degree:
		return "degree"
	case PartialDegree:
		return "partial_degree"
	default:
		return "unknown"
	}
}

const panicNormInvalid = "truncate: norm limit must be finite and >= 0"

// Policy is an immutable truncation configuration. The zero value is inactive.
type Policy struct {
	mode      Mode
	degree    int
	names     *set.Set[string]
	normLimit float64
}

// None returns the inactive policy.
func None() Policy { return Policy{} }

// ByDegree truncates terms of total degree >= limit.
func ByDegree(limit int) Policy { return Policy{mode: Degree, degree: limit} }

// ByPartialDegree truncates terms whose degree in the named symbols is >= limit.
func ByPartialDegree(names []string, limit int) Policy {
	return Policy{mode: PartialDegree, degree: limit, names: set.From(names)}
}

// ByNorm discards term pairs whose coefficient-norm product is below limit.
// A zero limit disables the criterion. Panics on NaN, ±Inf or negative limits.
func ByNorm(limit float64) Policy { return Policy{}.WithNorm(limit) }

// WithNorm returns a copy with the norm criterion set (0 disables it).
func (p Policy) WithNorm(limit float64) Policy {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		panic(panicNormInvalid)
	}
	p.normLimit = limit

	return p
}

// WithoutDegree returns a copy with the degree criterion disabled.
func (p Policy) WithoutDegree() Policy {
	p.mode, p.degree, p.names = Inactive, 0, nil

	return p
}

// Mode reports the degree criterion.
func (p Policy) Mode() Mode { return p.mode }

// DegreeLimit reports the degree limit (meaningful unless Mode is Inactive).
func (p Policy) DegreeLimit() int { return p.degree }

// NormLimit reports the norm threshold (0 when disabled).
func (p Policy) NormLimit() float64 { return p.normLimit }

// Names returns the partial-degree symbol names in ascending order.
func (p Policy) Names() []string {
	if p.names == nil {
		return nil
	}
	out := p.names.Slice()
	sort.Strings(out)

	return out
}

// IsActive reports whether any criterion is enabled.
func (p Policy) IsActive() bool { return p.mode != Inactive || p.normLimit > 0 }

// String is a human-readable summary.
func (p Policy) String() string {
	var parts []string
	switch p.mode {
	case Degree:
		parts = append(parts, fmt.Sprintf("degree<%d", p.degree))
	case PartialDegree:
		parts = append(parts, fmt.Sprintf("partial_degree{%s}<%d", strings.Join(p.Names(), ","), p.degree))
	}
	if p.normLimit > 0 {
		parts = append(parts, fmt.Sprintf("norm>=%g", p.normLimit))
	}
	if len(parts) == 0 {
		return "inactive"
	}

	return strings.Join(parts, ",")
}

// Controller holds a mutable Policy behind a mutex. It provides the
// set/unset control surface; multiplications read it once via Snapshot.
type Controller struct {
	mu sync.RWMutex
	p  Policy
}

// SetDegreeLimit switches to total-degree truncation (keeps the norm criterion).
func (c *Controller) SetDegreeLimit(limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.p.mode, c.p.degree, c.p.names = Degree, limit, nil
}

// SetPartialDegreeLimit switches to partial-degree truncation on names.
func (c *Controller) SetPartialDegreeLimit(names []string, limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.p.mode, c.p.degree, c.p.names = PartialDegree, limit, set.From(names)
}

// SetNormLimit sets the norm threshold (0 disables). Panics like WithNorm.
func (c *Controller) SetNormLimit(limit float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.p = c.p.WithNorm(limit)
}

// UnsetDegree disables the degree criterion only.
func (c *Controller) UnsetDegree() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.p = c.p.WithoutDegree()
}

// UnsetAll returns to the inactive policy.
func (c *Controller) UnsetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.p = Policy{}
}

// Snapshot returns the current policy.
func (c *Controller) Snapshot() Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.p
}
