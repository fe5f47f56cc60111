package stats

import (
	"fmt"
	"math"

	"github.com/uyouii/sample-statistics/common"
	"gonum.org/v1/gonum/stat"
)

// Skewness is the bias-corrected sample skewness
// n/((n-1)(n-2)) * sum(((x-mean)/s)^3).
func (a *Accumulator) Skewness() (float64, error) {
	n := len(a.values)
	if n < MinSkewnessCount {
		return math.NaN(), fmt.Errorf("skewness needs %d values, have %d: %w",
			MinSkewnessCount, n, common.ErrorInsufficientData)
	}
	if a.isConstant() {
		return 0, nil
	}
	return stat.Skew(a.values, nil), nil
}

// Kurtosis is the bias-corrected excess kurtosis.
func (a *Accumulator) Kurtosis() (float64, error) {
	n := len(a.values)
	if n < MinKurtosisCount {
		return math.NaN(), fmt.Errorf("kurtosis needs %d values, have %d: %w",
			MinKurtosisCount, n, common.ErrorInsufficientData)
	}
	if a.isConstant() {
		return 0, nil
	}
	return stat.ExKurtosis(a.values, nil), nil
}

func (a *Accumulator) isConstant() bool {
	variance, err := a.Variance()
	return err == nil && variance < MinMomentVariance
}
