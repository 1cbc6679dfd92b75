package fixed

import (
	"github.com/govalues/decimal"
)

// Point is an unsafe wrapper around decimal implementation. Constructors panic on values
// the decimal cannot represent.
type Point struct {
	v decimal.Decimal
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		return v
	}
	panic(err)
}
