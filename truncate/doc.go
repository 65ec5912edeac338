// Package truncate bounds the size of series products.
//
// A Policy is an immutable value combining two orthogonal criteria:
//
//   - a degree criterion (Inactive, Degree, PartialDegree): terms whose total
//     degree, or whose degree restricted to a named subset of symbols, reaches
//     the limit are discarded;
//   - a norm criterion: term pairs whose coefficient-norm product falls below a
//     threshold are discarded (meaningful for Poisson series).
//
// Policies are passed explicitly into every multiplication. Controller offers
// the classic set/unset surface on top, for callers that want one mutable
// configuration; multiplications always take a Snapshot.
//
// A Policy is bound to a concrete series layout with Bind. The Bound value
// measures terms, orders them so that the break condition is monotonic, and
// answers Skip/Accept inside the multiplication loops:
//
//	b := policy.Bind(args, key.KindMonomial, coeff.KindRational)
//	order := b.Order(measures)
//	for _, i := range order1 {
//	    for _, j := range order2 {
//	        if b.Skip(m1[i], m2[j]) { break }
//	        ...
//	    }
//	}
package truncate
