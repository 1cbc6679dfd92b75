package math

import (
	"golang.org/x/exp/constraints"
)

// Autocovariance returns the biased lag-k sample autocovariance of x around the
// supplied mean: (1/n) * sum_{t=k}^{n-1} (x[t]-mean)(x[t-k]-mean).
// Negative lags are mirrored. Lags at or beyond len(x) yield 0.
func Autocovariance[T constraints.Float](x []T, lag int, mean T) T {
	n := len(x)
	if lag < 0 {
		lag = -lag
	}
	if n == 0 || lag >= n {
		return 0
	}

	var sum T
	for t := lag; t < n; t++ {
		sum += (x[t] - mean) * (x[t-lag] - mean)
	}
	return sum / T(n)
}

// Autocovariances returns the autocovariances of x for lags 0..maxLag, computing
// the mean once.
func Autocovariances[T constraints.Float](x []T, maxLag int) []T {
	if maxLag < 0 {
		return nil
	}
	mean := Mean(x)
	out := make([]T, maxLag+1)
	for k := range out {
		out[k] = Autocovariance(x, k, mean)
	}
	return out
}
