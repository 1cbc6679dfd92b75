package dm

import (
	"testing"

	"github.com/peter-kozarec/forecasteval/pkg/utility/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(values ...int64) []fixed.Point {
	out := make([]fixed.Point, len(values))
	for i, v := range values {
		out[i] = fixed.FromInt64(v, 0)
	}
	return out
}

func TestDM_TestPoints(t *testing.T) {
	res, err := TestPoints(
		ints(10, 20, 30, 40, 50),
		ints(11, 21, 29, 42, 53),
		ints(13, 26, 24, 40, 59),
		EstimatorACF, WithOneSided(true))
	require.NoError(t, err)

	want, err := Test(trendActual, trendP1, trendP2, EstimatorACF, WithOneSided(true))
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestDM_TestPointsInvalid(t *testing.T) {
	_, err := TestPoints(ints(1, 2, 3), ints(1, 2), ints(3, 2, 1), EstimatorBartlett)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = TestPoints(ints(1, 2, 3), ints(1, 2, 3), ints(1, 2, 3), EstimatorBartlett)
	assert.ErrorIs(t, err, ErrZeroVariance)
}
