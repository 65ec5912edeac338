package series

import (
	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/key"
)

// Result holds the one or two terms of a term product.
type Result struct {
	n     int
	terms [key.MaxProducts]Term
}

// Len is the number of result terms.
func (r Result) Len() int { return r.n }

// Term returns result term i.
func (r Result) Term(i int) Term { return r.terms[i] }

// Terms returns the result terms as a slice.
func (r Result) Terms() []Term { return append([]Term(nil), r.terms[:r.n]...) }

// MultiplyTerms returns a·b without any truncation:
//   - monomial keys: one term (cf₁·cf₂, k₁+k₂);
//   - trigonometric keys: two terms (±cf₁·cf₂/2, k₁−k₂) and (±cf₁·cf₂/2, k₁+k₂)
//     following Werner's formulas, keys canonical, ignorable keys kept.
//
// Errors:
//   - key.ErrKindMismatch for mixed key kinds.
//   - coefficient arithmetic errors (coeff.ErrInexact when an Integer product
//     is odd under a trigonometric key, ErrCoefficientKind for nested misuse).
func MultiplyTerms(a, b Term, env coeff.Env) (Result, error) {
	var prods key.Products
	if err := key.Multiply(a.Key, b.Key, &prods); err != nil {
		return Result{}, err
	}
	p, err := a.Coeff.Mul(b.Coeff, env)
	if err != nil {
		return Result{}, err
	}

	var r Result
	for i := 0; i < prods.Len(); i++ {
		cf := p
		if prods.Len() > 1 {
			cf = p.Clone()
			if err = cf.DivInt(2); err != nil {
				return Result{}, err
			}
		}
		if prods.Sign(i) < 0 {
			cf.Negate()
		}
		r.terms[r.n] = Term{Key: prods.Key(i), Coeff: cf}
		r.n++
	}

	return r, nil
}
