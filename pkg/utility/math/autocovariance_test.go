package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestMath_Autocovariance(t *testing.T) {
	series := []float64{0, 2, 3, 2, 1, 8, 3, 2}
	mean := Mean(series)

	tests := []struct {
		name string
		lag  int
		want float64
	}{
		{"lag 3", 3, 0.681640625},
		{"negative lag mirrors", -3, 0.681640625},
		{"lag equal to length", len(series), 0},
		{"lag beyond length", len(series) + 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Autocovariance(series, tt.lag, mean), 1e-12)
		})
	}
}

func TestMath_AutocovarianceLagZeroIsPopulationVariance(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{"small integers", []float64{0, 2, 3, 2, 1, 8, 3, 2}},
		{"constant", []float64{4, 4, 4, 4}},
		{"single value", []float64{3.5}},
		{"mixed signs", []float64{-1.25, 0.5, 3.75, -2, 9.125, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Autocovariance(tt.series, 0, Mean(tt.series))
			assert.InDelta(t, stat.PopVariance(tt.series, nil), got, 1e-12)
		})
	}
}

func TestMath_AutocovarianceEmpty(t *testing.T) {
	assert.Zero(t, Autocovariance([]float64{}, 0, 0))
}

func TestMath_AutocovarianceFloat32(t *testing.T) {
	series := []float32{1, 3, 5, 7}
	got := Autocovariance(series, 1, Mean(series))
	// deviations -3,-1,1,3 -> (3 - 1 + 3) / 4
	assert.InDelta(t, float32(1.25), got, 1e-6)
}

func TestMath_Autocovariances(t *testing.T) {
	series := []float64{0, 2, 3, 2, 1, 8, 3, 2}
	mean := Mean(series)

	got := Autocovariances(series, 4)
	require.Len(t, got, 5)
	for k, v := range got {
		assert.InDelta(t, Autocovariance(series, k, mean), v, 1e-15, "lag %d", k)
	}

	assert.Nil(t, Autocovariances(series, -1))
}

func TestMath_Mean(t *testing.T) {
	assert.Zero(t, Mean([]float64{}))
	assert.InDelta(t, 2.625, Mean([]float64{0, 2, 3, 2, 1, 8, 3, 2}), 1e-15)
}
