package dm

import (
	"fmt"
	"math"
)

// LossFunc charges a forecast for missing the actual value.
type LossFunc func(actual, predicted float64) float64

func SquaredError(actual, predicted float64) float64 {
	diff := actual - predicted
	return diff * diff
}

func AbsoluteError(actual, predicted float64) float64 {
	return math.Abs(actual - predicted)
}

// AsymmetricLinear returns the pinball loss for quantile tau in (0, 1):
// under-forecasts cost tau per unit, over-forecasts cost 1 - tau.
func AsymmetricLinear(tau float64) LossFunc {
	return func(actual, predicted float64) float64 {
		diff := actual - predicted
		if diff >= 0 {
			return tau * diff
		}
		return (tau - 1) * diff
	}
}

// LossDifferential returns d[i] = loss(actual[j], p1[j]) - loss(actual[j], p2[j])
// with j = i + horizon - 1, for i in 0..n-horizon.
func LossDifferential(actual, p1, p2 []float64, loss LossFunc, horizon int) ([]float64, error) {
	n := len(actual)
	if len(p1) != n || len(p2) != n {
		return nil, fmt.Errorf("%w: series lengths differ (actual=%d, p1=%d, p2=%d)", ErrInvalidParameter, n, len(p1), len(p2))
	}
	if loss == nil {
		return nil, fmt.Errorf("%w: loss function is nil", ErrInvalidParameter)
	}
	if horizon < 1 || horizon > n {
		return nil, fmt.Errorf("%w: horizon %d outside [1, %d]", ErrInvalidParameter, horizon, n)
	}

	d := make([]float64, 0, n-horizon+1)
	for j := horizon - 1; j < n; j++ {
		l1 := loss(actual[j], p1[j])
		l2 := loss(actual[j], p2[j])
		if !isFinite(l1) || !isFinite(l2) {
			return nil, fmt.Errorf("%w: loss is not finite at index %d (%g, %g)", ErrInvalidParameter, j, l1, l2)
		}
		d = append(d, l1-l2)
	}
	return d, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
