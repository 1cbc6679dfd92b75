package dm

import (
	"go.uber.org/zap/zapcore"
)

type Result struct {
	Statistic float64
	PValue    float64
	DoF       int

	Mean     float64 // mean loss differential
	Variance float64 // long-run variance of the loss differential
	Samples  int     // length of the loss differential
	Horizon  int

	Estimator        VarianceEstimator
	OneSided         bool
	HarveyCorrection bool
}

// Significant reports whether the null of equal accuracy is rejected at level alpha.
func (r Result) Significant(alpha float64) bool {
	return r.PValue < alpha
}

func (r Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("statistic", r.Statistic)
	enc.AddFloat64("p_value", r.PValue)
	enc.AddInt("dof", r.DoF)
	enc.AddFloat64("mean", r.Mean)
	enc.AddFloat64("variance", r.Variance)
	enc.AddInt("samples", r.Samples)
	enc.AddInt("horizon", r.Horizon)
	enc.AddString("estimator", r.Estimator.String())
	enc.AddBool("one_sided", r.OneSided)
	enc.AddBool("harvey_correction", r.HarveyCorrection)
	return nil
}
