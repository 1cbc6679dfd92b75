package special

import (
	"math"
)

// Term supplies the n-th coefficient of a continued fraction evaluated at x.
type Term func(n int, x float64) float64

type FractionConfig struct {
	// Epsilon is the relative tolerance between successive convergents.
	Epsilon float64
	// MaxIter bounds the number of evaluated terms.
	MaxIter int
	// Small replaces near-zero intermediate denominators.
	Small float64
}

func DefaultFractionConfig() FractionConfig {
	return FractionConfig{
		Epsilon: 1e-10,
		MaxIter: 10000,
		Small:   1e-50,
	}
}

func (c FractionConfig) normalize() FractionConfig {
	def := DefaultFractionConfig()
	if !(c.Epsilon > 0) {
		c.Epsilon = def.Epsilon
	}
	if c.MaxIter <= 0 {
		c.MaxIter = def.MaxIter
	}
	if !(c.Small > 0) {
		c.Small = def.Small
	}
	return c
}

// ContinuedFraction evaluates
//
//	fa(0) + fb(1)/(fa(1) + fb(2)/(fa(2) + ...))
//
// with the modified Lentz algorithm. Evaluation stops once a step changes the
// convergent by less than Epsilon relative, or after MaxIter steps, in which
// case the last convergent is returned.
func ContinuedFraction(fa, fb Term, x float64, cfg FractionConfig) float64 {
	cfg = cfg.normalize()

	h := fa(0, x)
	if math.Abs(h) < cfg.Small {
		h = cfg.Small
	}

	c := h
	d := 0.0

	for n := 1; n < cfg.MaxIter; n++ {
		a := fa(n, x)
		b := fb(n, x)

		d = a + b*d
		if math.Abs(d) < cfg.Small {
			d = cfg.Small
		}
		c = a + b/c
		if math.Abs(c) < cfg.Small {
			c = cfg.Small
		}
		d = 1 / d

		delta := c * d
		h *= delta
		if math.Abs(delta-1) < cfg.Epsilon {
			break
		}
	}

	return h
}
