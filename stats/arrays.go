package stats

import (
	"math"

	"github.com/uyouii/sample-statistics/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinOf, MaxOf and MeanOf compute directly over a slice without keeping
// any state.

func MinOf(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return floats.Min(x), nil
}

func MaxOf(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return floats.Max(x), nil
}

func MeanOf(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return stat.Mean(x, nil), nil
}

func Float64s(x []int) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = float64(v)
	}
	return res
}
