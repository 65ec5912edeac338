package key

import "fmt"

// MaxProducts is the largest number of keys a single key product can yield.
const MaxProducts = 2

// Products is the fixed-capacity result list of a key multiplication.
// Monomial products fill one slot; Trig products fill two (difference, sum).
// Each slot carries the sign its coefficient contribution must be multiplied by.
type Products struct {
	n     int
	keys  [MaxProducts]Key
	signs [MaxProducts]int
}

// Len is the number of filled slots.
func (p *Products) Len() int { return p.n }

// Key returns the i-th result key.
func (p *Products) Key(i int) Key { return p.keys[i] }

// Sign returns the i-th coefficient sign (+1 or −1).
func (p *Products) Sign(i int) int { return p.signs[i] }

// Reset empties the list for reuse.
func (p *Products) Reset() {
	p.n = 0
	p.keys = [MaxProducts]Key{}
}

func (p *Products) push(k Key, sign int) {
	p.keys[p.n] = k
	p.signs[p.n] = sign
	p.n++
}

// Multiply computes the product of a and b into out (which is reset first).
// The wider operand determines the width of the results.
//
// Errors:
//   - ErrKindMismatch when a and b are of different kinds.
func Multiply(a, b Key, out *Products) error {
	out.Reset()
	switch x := a.(type) {
	case Monomial:
		y, ok := b.(Monomial)
		if !ok {
			return fmt.Errorf("key.Multiply(%s, %s): %w", a.Kind(), b.Kind(), ErrKindMismatch)
		}
		mulMonomial(x, y, out)
	case Trig:
		y, ok := b.(Trig)
		if !ok {
			return fmt.Errorf("key.Multiply(%s, %s): %w", a.Kind(), b.Kind(), ErrKindMismatch)
		}
		mulTrig(x, y, out)
	default:
		return fmt.Errorf("key.Multiply(%T): %w", a, ErrKindMismatch)
	}

	return nil
}

// ResultsPerProduct reports how many keys a product of kind k yields.
func ResultsPerProduct(k Kind) int {
	if k == KindTrig {
		return 2
	}

	return 1
}

// Zero returns the identity key of kind k at width n: the constant monomial, or cos(0).
func Zero(k Kind, n int) Key {
	if k == KindTrig {
		return Trig{e: make([]int, n), cos: true}
	}

	return Monomial{e: make([]int, n)}
}

// Unit returns the key with a single 1 at position i of width n.
// For KindTrig the flavour is given by cos.
func Unit(k Kind, n, i int, cos bool) Key {
	e := make([]int, n)
	e[i] = 1
	if k == KindTrig {
		return Trig{e: e, cos: cos}
	}

	return Monomial{e: e}
}

// FromElems builds a key of kind k from elems (copied).
func FromElems(k Kind, cos bool, elems []int) Key {
	if k == KindTrig {
		return NewTrig(cos, elems...)
	}

	return NewMonomial(elems...)
}
