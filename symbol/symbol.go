package symbol

import (
	"fmt"
	"sort"
	"sync"
)

// Symbol is a named variable with its time-evaluation coefficients
// x(t) = Σ timeEval[i]·tⁱ. Symbols are immutable; compare them by Name.
type Symbol struct {
	name     string
	timeEval []float64
}

// New builds a free-standing symbol. Use Table.Register to obtain the canonical
// instance for a name.
func New(name string, timeEval ...float64) (*Symbol, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	te := make([]float64, len(timeEval))
	copy(te, timeEval)

	return &Symbol{name: name, timeEval: te}, nil
}

// Name returns the identifying name.
func (s *Symbol) Name() string { return s.name }

// TimeEval returns a copy of the time-evaluation coefficients.
func (s *Symbol) TimeEval() []float64 {
	out := make([]float64, len(s.timeEval))
	copy(out, s.timeEval)

	return out
}

// Eval evaluates the time polynomial at t (Horner scheme).
// A symbol without evaluation data evaluates to 0.
func (s *Symbol) Eval(t float64) float64 {
	var r float64
	for i := len(s.timeEval) - 1; i >= 0; i-- {
		r = r*t + s.timeEval[i]
	}

	return r
}

// String returns the name.
func (s *Symbol) String() string { return s.name }

func sameEval(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Table maps names to their unique Symbol. It is safe for concurrent use.
type Table struct {
	mu   sync.RWMutex
	syms map[string]*Symbol
}

// NewTable returns an empty registry.
func NewTable() *Table {
	return &Table{syms: make(map[string]*Symbol)}
}

// Register returns the canonical symbol for name, creating it on first use.
// Registering an existing name with identical evaluation data is a no-op.
//
// Errors:
//   - ErrEmptyName for "".
//   - ErrSymbolConflict when name exists with different evaluation data.
//
// Complexity: O(len(timeEval)).
func (t *Table) Register(name string, timeEval ...float64) (*Symbol, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.syms[name]; ok {
		if !sameEval(s.timeEval, timeEval) {
			return nil, fmt.Errorf("symbol.Register(%q): %w", name, ErrSymbolConflict)
		}
		return s, nil
	}
	s, err := New(name, timeEval...)
	if err != nil {
		return nil, err
	}
	t.syms[name] = s

	return s, nil
}

// MustRegister is Register that panics on error; intended for fixtures.
func (t *Table) MustRegister(name string, timeEval ...float64) *Symbol {
	s, err := t.Register(name, timeEval...)
	if err != nil {
		panic(err)
	}

	return s
}

// Lookup returns the symbol bound to name.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.syms[name]

	return s, ok
}

// Resolve looks up every name, failing with ErrNotFound on the first miss.
func (t *Table) Resolve(names ...string) ([]*Symbol, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Symbol, len(names))
	for i, n := range names {
		s, ok := t.syms[n]
		if !ok {
			return nil, fmt.Errorf("symbol.Resolve(%q): %w", n, ErrNotFound)
		}
		out[i] = s
	}

	return out, nil
}

// Names returns all registered names in ascending order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.syms))
	for n := range t.syms {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of registered symbols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.syms)
}
