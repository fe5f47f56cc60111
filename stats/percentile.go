package stats

import (
	"fmt"
	"math"

	"github.com/uyouii/sample-statistics/common"
	"github.com/uyouii/sample-statistics/model"
)

// Percentile estimates the p-th percentile, p in (0, 100].
//
// The sorted sample is indexed from zero at position p/100*(n-1) and the
// result is linearly interpolated between the values at the floor and the
// ceil of that position. percentile(100) is always the max.
func (a *Accumulator) Percentile(p float64) (float64, error) {
	if len(a.values) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	if math.IsNaN(p) || p <= 0 || p > 100 {
		return math.NaN(), fmt.Errorf("percentile %v not in (0, 100]: %w", p, common.ErrorInvalidArgument)
	}
	return interpolate(a.sortedValues(), p), nil
}

func (a *Accumulator) Median() (float64, error) {
	return a.Percentile(50)
}

func (a *Accumulator) Percentiles(ps ...float64) ([]model.QuantileValue, error) {
	res := make([]model.QuantileValue, 0, len(ps))
	for _, p := range ps {
		value, err := a.Percentile(p)
		if err != nil {
			return nil, err
		}
		res = append(res, model.QuantileValue{
			Quantile: p,
			Value:    value,
		})
	}
	return res, nil
}

func interpolate(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lower := math.Floor(pos)
	upper := math.Ceil(pos)

	lowerValue := sorted[int(lower)]
	if lower == upper {
		return lowerValue
	}
	upperValue := sorted[int(upper)]
	return lowerValue + (pos-lower)*(upperValue-lowerValue)
}
