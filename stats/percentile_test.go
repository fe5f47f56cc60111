package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/sample-statistics/common"
)

func TestAccumulator_Percentile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"median odd", []float64{1, 2, 3, 4, 5}, 50, 3},
		{"median odd unsorted", []float64{5, 3, 1, 4, 2}, 50, 3},
		{"median even", []float64{40, 10, 30, 20}, 50, 25},
		{"exact rank", []float64{1, 2, 3, 4, 5}, 25, 2},
		{"interpolated", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 90, 9.1},
		{"low interpolated", []float64{10, 20, 30, 40}, 10, 13},
		{"max", []float64{7, 3, 9, 1}, 100, 9},
		{"single", []float64{42}, 1, 42},
		{"ties", []float64{2, 2, 2, 2}, 75, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newAccumulator(tt.values...)
			got, err := acc.Percentile(tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAccumulator_PercentileBounds(t *testing.T) {
	t.Parallel()

	acc := newAccumulator(4, 8, 15, 16, 23, 42)

	for _, p := range []float64{0, -1, 100.0001, math.NaN(), math.Inf(1)} {
		_, err := acc.Percentile(p)
		assert.ErrorIs(t, err, common.ErrorInvalidArgument, "p=%v", p)
	}

	maxValue, err := acc.Max()
	require.NoError(t, err)
	p100, err := acc.Percentile(100)
	require.NoError(t, err)
	assert.Equal(t, maxValue, p100)

	minValue, err := acc.Min()
	require.NoError(t, err)
	tiny, err := acc.Percentile(1e-9)
	require.NoError(t, err)
	assert.InDelta(t, minValue, tiny, 1e-6)
}

func TestAccumulator_Percentiles(t *testing.T) {
	t.Parallel()

	acc := newAccumulator(1, 2, 3, 4, 5)
	res, err := acc.Percentiles(90, 50)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 90.0, res[0].Quantile)
	assert.InDelta(t, 4.6, res[0].Value, 1e-9)
	assert.Equal(t, 50.0, res[1].Quantile)
	assert.Equal(t, 3.0, res[1].Value)

	median, err := acc.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, median)

	_, err = acc.Percentiles(50, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}
