package special

import (
	"math"
)

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// LogBeta returns ln B(a, b) = lgamma(a) + lgamma(b) - lgamma(a+b).
// Requires a > 0 and b > 0, otherwise NaN is returned.
func LogBeta(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) || a <= 0 || b <= 0 {
		return math.NaN()
	}
	return lgamma(a) + lgamma(b) - lgamma(a+b)
}

// RegularizedIncompleteBeta returns I_x(a, b) using DefaultFractionConfig.
func RegularizedIncompleteBeta(x, a, b float64) float64 {
	return RegularizedIncompleteBetaWith(x, a, b, DefaultFractionConfig())
}

// RegularizedIncompleteBetaWith returns I_x(a, b), the CDF of Beta(a, b) at x.
//
// Requires 0 <= x <= 1, a > 0 and b > 0; NaN is returned otherwise. The
// boundaries return exactly 0 and 1. Above (a+1)/(a+b+2) the fraction converges
// slowly, so the value is taken from the symmetry I_x(a,b) = 1 - I_{1-x}(b,a).
func RegularizedIncompleteBetaWith(x, a, b float64, cfg FractionConfig) float64 {
	if math.IsNaN(x) || math.IsNaN(a) || math.IsNaN(b) || x < 0 || x > 1 || a <= 0 || b <= 0 {
		return math.NaN()
	}

	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}

	if x > (a+1)/(a+b+2) {
		return 1 - incompleteBetaFraction(1-x, b, a, cfg)
	}
	return incompleteBetaFraction(x, a, b, cfg)
}

// incompleteBetaFraction evaluates
//
//	x^a (1-x)^b / (a B(a,b)) / (1 + d1/(1 + d2/(1 + ...)))
//
// with
//
//	d_{2m+1} = -(a+m)(a+b+m)x / ((a+2m)(a+2m+1))
//	d_{2m}   = m(b-m)x / ((a+2m-1)(a+2m))
func incompleteBetaFraction(x, a, b float64, cfg FractionConfig) float64 {
	numerator := func(int, float64) float64 { return 1 }
	denominator := func(n int, x float64) float64 {
		if n%2 == 0 {
			m := float64(n) / 2
			return (m * (b - m) * x) / ((a + 2*m - 1) * (a + 2*m))
		}
		m := float64(n-1) / 2
		return -((a + m) * (a + b + m) * x) / ((a + 2*m) * (a + 2*m + 1))
	}

	prefix := math.Exp(a*math.Log(x) + b*math.Log1p(-x) - math.Log(a) - LogBeta(a, b))
	return prefix / ContinuedFraction(numerator, denominator, x, cfg)
}
