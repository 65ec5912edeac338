package coeff

import (
	"math"
	"math/big"
	"strconv"
)

// Kind enumerates coefficient variants.
type Kind uint8

const (
	// KindDouble is float64 arithmetic.
	KindDouble Kind = iota

	// KindInteger is exact arbitrary-precision integer arithmetic.
	KindInteger

	// KindRational is exact arbitrary-precision rational arithmetic.
	KindRational

	// KindNested is a polynomial series used as a coefficient (series.Nested).
	KindNested
)

// String returns the lower-case name used by the file format.
func (k Kind) String() string {
	switch k {
	case KindDouble:
		return "double"
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindDouble, KindInteger, KindRational, KindNested} {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, coeffErrorf("ParseKind", strconv.Quote(s), ErrParse)
}

// IsExact reports whether arithmetic of kind k is exact.
func (k Kind) IsExact() bool { return k == KindInteger || k == KindRational }

// Env carries the context a composite coefficient needs to multiply itself:
// the active truncation and multiplication settings of the enclosing product.
// Scalar coefficients ignore it; a nil Env is valid for them.
type Env interface {
	// MultiplyCoefficients returns a·b for composite coefficients.
	MultiplyCoefficients(a, b Coefficient) (Coefficient, error)
}

// Coefficient is the capability set the series engine requires.
type Coefficient interface {
	// Kind reports the variant.
	Kind() Kind

	// Clone returns an independent deep copy.
	Clone() Coefficient

	// Zero returns the additive identity of the same variant.
	Zero() Coefficient

	// IsZero reports exact (syntactic) zero.
	IsZero() bool

	// IsIgnorable reports whether the value is zero within tol
	// (tol is ignored by exact variants).
	IsIgnorable(tol float64) bool

	// AddAssign sets the receiver to receiver + x.
	AddAssign(x Coefficient)

	// SubAssign sets the receiver to receiver − x.
	SubAssign(x Coefficient)

	// Negate sets the receiver to −receiver.
	Negate()

	// Mul returns receiver·x as a new value.
	Mul(x Coefficient, env Env) (Coefficient, error)

	// AddProduct sets the receiver to receiver + sign·a·b (multiply-accumulate).
	AddProduct(a, b Coefficient, sign int, env Env) error

	// DivInt divides the receiver in place by a non-zero machine integer.
	DivInt(n int64) error

	// Quo returns receiver / x as a new value.
	Quo(x Coefficient) (Coefficient, error)

	// Norm is a non-negative magnitude used by norm truncation.
	Norm() float64

	// Hash is consistent with Compare == 0.
	Hash() uint64

	// Compare orders values of the same variant.
	Compare(x Coefficient) int

	// String renders the value in the form Parse accepts.
	String() string
}

// New returns the zero of kind k. KindNested has no scalar zero and yields nil.
func New(k Kind) Coefficient {
	switch k {
	case KindDouble:
		return NewDouble(0)
	case KindInteger:
		return NewInteger(0)
	case KindRational:
		return NewRational(0, 1)
	default:
		return nil
	}
}

// FromInt builds a scalar coefficient of kind k from n.
func FromInt(k Kind, n int64) (Coefficient, error) {
	switch k {
	case KindDouble:
		return NewDouble(float64(n)), nil
	case KindInteger:
		return NewInteger(n), nil
	case KindRational:
		return NewRational(n, 1), nil
	}

	return nil, coeffErrorf("FromInt", k, ErrKindMismatch)
}

// FromFloat builds a scalar coefficient of kind k from f.
//
// Errors:
//   - ErrDomain for NaN or ±Inf into exact kinds.
//   - ErrInexact for non-integral f into KindInteger.
func FromFloat(k Kind, f float64) (Coefficient, error) {
	switch k {
	case KindDouble:
		return NewDouble(f), nil
	case KindInteger:
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, coeffErrorf("FromFloat", f, ErrDomain)
		}
		if f != math.Trunc(f) {
			return nil, coeffErrorf("FromFloat", f, ErrInexact)
		}
		i, _ := new(big.Float).SetFloat64(f).Int(nil)
		out := &Integer{}
		out.v.Set(i)
		return out, nil
	case KindRational:
		r, err := RationalFromFloat(f)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	return nil, coeffErrorf("FromFloat", k, ErrKindMismatch)
}

// Parse reads a scalar coefficient of kind k.
//
// Double accepts strconv float syntax and Integer accepts base-10 digits.
// Rational accepts "p/q", an integer, or a finite decimal such as "0.125".
func Parse(k Kind, s string) (Coefficient, error) {
	var (
		c   Coefficient
		err error
	)
	switch k {
	case KindDouble:
		var d *Double
		d, err = ParseDouble(s)
		c = d
	case KindInteger:
		var i *Integer
		i, err = ParseInteger(s)
		c = i
	case KindRational:
		var r *Rational
		r, err = ParseRational(s)
		c = r
	default:
		return nil, coeffErrorf("Parse", k, ErrKindMismatch)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// IsOne reports whether c equals the multiplicative identity.
func IsOne(c Coefficient) bool {
	one, err := FromInt(c.Kind(), 1)
	if err != nil {
		return false
	}

	return c.Compare(one) == 0
}
