package seriesio

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvseries/coeff"
)

// Decimal renders a scalar coefficient as a fixed-point decimal with places
// digits after the point. Rationals are rounded half away from zero; Integers
// are printed exactly; non-finite Doubles keep their strconv form.
func Decimal(cf coeff.Coefficient, places int32) string {
	switch c := cf.(type) {
	case *coeff.Rational:
		return c.Decimal(places)
	case *coeff.Double:
		f := c.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return decimal.NewFromFloat(f).StringFixed(places)
	default:
		return cf.String()
	}
}
