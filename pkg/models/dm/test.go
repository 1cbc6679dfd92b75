package dm

import (
	"fmt"
	"math"

	umath "github.com/peter-kozarec/forecasteval/pkg/utility/math"
	"github.com/peter-kozarec/forecasteval/pkg/utility/math/special"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Test runs the Diebold-Mariano test of equal predictive accuracy of forecasts
// p1 and p2 against the actual series. The estimator has no default and must be
// one of EstimatorACF or EstimatorBartlett.
//
// Errors wrap ErrInvalidParameter for malformed input, ErrZeroVariance when
// both forecasts incur the same losses and ErrNegativeVariance when the
// estimator yields a negative long-run variance.
func Test(actual, p1, p2 []float64, estimator VarianceEstimator, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(actual, p1, p2, estimator, o); err != nil {
		return Result{}, err
	}

	h := o.horizon
	d, err := LossDifferential(actual, p1, p2, o.loss, h)
	if err != nil {
		return Result{}, err
	}

	m := len(d)
	mean := umath.Mean(d)
	variance := estimator.LongRunVariance(d, h)

	logger := o.logger.With(
		zap.String("estimator", estimator.String()),
		zap.Int("horizon", h),
		zap.Int("samples", m))

	if !isFinite(mean) || !isFinite(variance) {
		logger.Debug("loss differential overflows", zap.Float64("mean", mean), zap.Float64("variance", variance))
		return Result{}, fmt.Errorf("%w: loss differential overflows float64 (mean=%g, variance=%g)", ErrInvalidParameter, mean, variance)
	}
	if variance < 0 {
		logger.Debug("negative long-run variance", zap.Float64("variance", variance))
		return Result{}, fmt.Errorf("%w: %g with %s estimator at horizon %d", ErrNegativeVariance, variance, estimator, h)
	}
	if variance == 0 {
		logger.Debug("zero long-run variance", zap.Float64("mean", mean))
		return Result{}, fmt.Errorf("%w: forecasts incur identical losses", ErrZeroVariance)
	}

	mf, hf := float64(m), float64(h)
	stat := mean / math.Sqrt(variance/mf)
	if o.harveyCorrection {
		// equals (m-h)(m-h+1)/m^2, never negative
		stat *= math.Sqrt((mf + 1 - 2*hf + hf*(hf-1)/mf) / mf)
	}
	if !isFinite(stat) {
		logger.Debug("statistic overflows", zap.Float64("mean", mean), zap.Float64("variance", variance))
		return Result{}, fmt.Errorf("%w: statistic overflows float64 (mean=%g, variance=%g)", ErrInvalidParameter, mean, variance)
	}

	dof := m - 1
	var p float64
	if o.oneSided {
		p = special.StudentTCDF(stat, float64(dof), o.fraction)
	} else {
		p = special.StudentTTwoTailed(stat, float64(dof), o.fraction)
	}

	res := Result{
		Statistic:        stat,
		PValue:           clamp(p, 0, 1),
		DoF:              dof,
		Mean:             mean,
		Variance:         variance,
		Samples:          m,
		Horizon:          h,
		Estimator:        estimator,
		OneSided:         o.oneSided,
		HarveyCorrection: o.harveyCorrection,
	}
	logger.Debug("diebold-mariano test", zap.Object("result", res))
	return res, nil
}

func validate(actual, p1, p2 []float64, estimator VarianceEstimator, o options) error {
	var err error

	n := len(actual)
	if len(p1) != n || len(p2) != n {
		err = multierr.Append(err, fmt.Errorf("%w: series lengths differ (actual=%d, p1=%d, p2=%d)",
			ErrInvalidParameter, n, len(p1), len(p2)))
	}
	if n < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidParameter, n))
	}
	if o.horizon < 1 || o.horizon > n {
		err = multierr.Append(err, fmt.Errorf("%w: horizon %d outside [1, %d]", ErrInvalidParameter, o.horizon, n))
	}
	if !estimator.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: unknown variance estimator %q", ErrInvalidParameter, string(estimator)))
	}
	if o.loss == nil {
		err = multierr.Append(err, fmt.Errorf("%w: loss function is nil", ErrInvalidParameter))
	}
	if !(o.fraction.Epsilon >= 0) || o.fraction.MaxIter < 0 || !(o.fraction.Small >= 0) {
		err = multierr.Append(err, fmt.Errorf("%w: fraction config %+v", ErrInvalidParameter, o.fraction))
	}

	for _, s := range []struct {
		name   string
		values []float64
	}{{"actual", actual}, {"p1", p1}, {"p2", p2}} {
		if !allFinite(s.values) {
			err = multierr.Append(err, fmt.Errorf("%w: %s contains NaN or Inf", ErrInvalidParameter, s.name))
		}
	}

	return err
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
