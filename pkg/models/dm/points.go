package dm

import (
	"fmt"

	"github.com/peter-kozarec/forecasteval/pkg/utility/fixed"
)

// TestPoints runs Test on fixed-point series.
func TestPoints(actual, p1, p2 []fixed.Point, estimator VarianceEstimator, opts ...Option) (Result, error) {
	series := make([][]float64, 3)
	for i, points := range [][]fixed.Point{actual, p1, p2} {
		values, err := fixed.Float64s(points)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		series[i] = values
	}
	return Test(series[0], series[1], series[2], estimator, opts...)
}
