package dm

import (
	"fmt"
	"strings"

	"github.com/peter-kozarec/forecasteval/pkg/utility/math"
)

// VarianceEstimator selects how autocovariances of the loss differential are
// combined into its long-run variance.
type VarianceEstimator string

const (
	// EstimatorACF uses gamma(0) + 2 * sum_{k=1}^{h-1} gamma(k).
	EstimatorACF VarianceEstimator = "acf"
	// EstimatorBartlett weights lag k by 1 - k/h.
	EstimatorBartlett VarianceEstimator = "bartlett"
)

func ParseVarianceEstimator(s string) (VarianceEstimator, error) {
	e := VarianceEstimator(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("%w: unknown variance estimator %q", ErrInvalidParameter, s)
	}
	return e, nil
}

func (e VarianceEstimator) Valid() bool {
	return e == EstimatorACF || e == EstimatorBartlett
}

func (e VarianceEstimator) String() string { return string(e) }

func (e VarianceEstimator) weight(lag, horizon int) float64 {
	if e == EstimatorBartlett {
		return 1 - float64(lag)/float64(horizon)
	}
	return 1
}

// LongRunVariance combines the autocovariances of d at lags 0..h-1. Lags the
// series is too short to reach contribute nothing.
func (e VarianceEstimator) LongRunVariance(d []float64, horizon int) float64 {
	if len(d) == 0 || horizon < 1 {
		return 0
	}

	gamma := math.Autocovariances(d, min(horizon, len(d))-1)
	variance := gamma[0]
	for k := 1; k < len(gamma); k++ {
		variance += 2 * e.weight(k, horizon) * gamma[k]
	}
	return variance
}
