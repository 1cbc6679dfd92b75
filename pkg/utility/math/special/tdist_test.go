package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSpecial_StudentTMatchesGonum(t *testing.T) {
	cfg := DefaultFractionConfig()
	for _, dof := range []float64{1, 2, 4, 9, 30, 250} {
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
		for _, x := range []float64{-6, -2.2229922805746782, -0.5, 0, 0.3, 1.96, 4.5} {
			assert.InDelta(t, 2*dist.Survival(math.Abs(x)), StudentTTwoTailed(x, dof, cfg), 1e-8, "dof=%g t=%g", dof, x)
			assert.InDelta(t, dist.CDF(x), StudentTCDF(x, dof, cfg), 1e-8, "dof=%g t=%g", dof, x)
		}
	}
}

func TestSpecial_StudentTTwoTailedEdges(t *testing.T) {
	cfg := DefaultFractionConfig()

	assert.Equal(t, 1.0, StudentTTwoTailed(0, 5, cfg))
	assert.Equal(t, 0.0, StudentTTwoTailed(math.Inf(1), 5, cfg))
	assert.Equal(t, 0.0, StudentTTwoTailed(math.Inf(-1), 5, cfg))
	assert.True(t, math.IsNaN(StudentTTwoTailed(1, 0, cfg)))
	assert.True(t, math.IsNaN(StudentTTwoTailed(math.NaN(), 3, cfg)))
	assert.True(t, math.IsNaN(StudentTCDF(1, -1, cfg)))
	assert.Equal(t, 0.5, StudentTCDF(0, 3, cfg))
}

func TestSpecial_StudentTSymmetric(t *testing.T) {
	cfg := DefaultFractionConfig()
	for _, x := range []float64{0.1, 1, 2.5, 8} {
		assert.Equal(t, StudentTTwoTailed(x, 7, cfg), StudentTTwoTailed(-x, 7, cfg))
		assert.InDelta(t, 1.0, StudentTCDF(x, 7, cfg)+StudentTCDF(-x, 7, cfg), 1e-12)
	}
}
