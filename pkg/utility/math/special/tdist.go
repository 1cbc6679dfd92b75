package special

import (
	"math"
)

// StudentTTwoTailed returns P(|T| >= |t|) for a Student's t variable with dof
// degrees of freedom.
func StudentTTwoTailed(t, dof float64, cfg FractionConfig) float64 {
	if math.IsNaN(t) || !(dof > 0) {
		return math.NaN()
	}
	if math.IsInf(t, 0) {
		return 0
	}
	return RegularizedIncompleteBetaWith(dof/(dof+t*t), dof/2, 0.5, cfg)
}

// StudentTCDF returns P(T <= t) for a Student's t variable with dof degrees of freedom.
func StudentTCDF(t, dof float64, cfg FractionConfig) float64 {
	p := StudentTTwoTailed(t, dof, cfg)
	if math.IsNaN(p) {
		return p
	}
	if t < 0 {
		return p / 2
	}
	return 1 - p/2
}
