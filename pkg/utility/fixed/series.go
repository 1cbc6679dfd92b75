package fixed

import (
	"fmt"
)

// Float64s converts a fixed-point series into float64 values, failing on the first
// point that has no float64 representation.
func Float64s(points []Point) ([]float64, error) {
	out := make([]float64, len(points))
	for i, p := range points {
		f, ok := p.Float64()
		if !ok {
			return nil, fmt.Errorf("point %s at index %d is not representable as float64", p, i)
		}
		out[i] = f
	}
	return out, nil
}

func FromFloat64s(values []float64) []Point {
	out := make([]Point, len(values))
	for i, v := range values {
		out[i] = FromFloat64(v)
	}
	return out
}
