package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/sample-statistics/common"
	"github.com/uyouii/sample-statistics/model"
)

// Accumulator keeps every observation it is given and answers both the
// streaming queries (O(1)) and the order based ones (sorted copy).
// It is not safe for concurrent use, see SyncAccumulator.
type Accumulator struct {
	values []float64

	sum  float64
	min  float64
	max  float64
	mean float64 // welford running mean
	m2   float64 // sum of squared deviations from the running mean

	sorted    []float64
	sortValid bool

	frequency *Frequency
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		values:    []float64{},
		min:       math.Inf(1),
		max:       math.Inf(-1),
		frequency: NewFrequency(),
	}
}

func (a *Accumulator) Add(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("add %v: %w", value, common.ErrorInvalidValue)
	}

	a.values = append(a.values, value)
	n := float64(len(a.values))

	a.sum += value
	a.min = math.Min(a.min, value)
	a.max = math.Max(a.max, value)

	delta := value - a.mean
	a.mean += delta / n
	a.m2 += delta * (value - a.mean)

	a.sortValid = false
	a.frequency.Add(value)
	return nil
}

// AddInts records each integer; integers are always finite so it cannot fail.
func (a *Accumulator) AddInts(values ...int) {
	for _, v := range values {
		_ = a.Add(float64(v))
	}
}

func (a *Accumulator) Count() int64 {
	return int64(len(a.values))
}

func (a *Accumulator) Sum() float64 {
	return a.sum
}

func (a *Accumulator) Min() (float64, error) {
	if len(a.values) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return a.min, nil
}

func (a *Accumulator) Max() (float64, error) {
	if len(a.values) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return a.max, nil
}

func (a *Accumulator) Mean() (float64, error) {
	if len(a.values) == 0 {
		return math.NaN(), common.ErrorEmptySample
	}
	return a.sum / float64(len(a.values)), nil
}

// Variance is the bias-corrected sample variance.
func (a *Accumulator) Variance() (float64, error) {
	n := len(a.values)
	if n < 2 {
		return math.NaN(), fmt.Errorf("variance needs 2 values, have %d: %w", n, common.ErrorInsufficientData)
	}
	return a.m2 / float64(n-1), nil
}

func (a *Accumulator) StdDev() (float64, error) {
	variance, err := a.Variance()
	if err != nil {
		return math.NaN(), err
	}
	return math.Sqrt(variance), nil
}

func (a *Accumulator) Summary() (model.Summary, error) {
	if len(a.values) == 0 {
		return model.Summary{}, common.ErrorEmptySample
	}
	mean, _ := a.Mean()
	return model.Summary{
		Count: a.Count(),
		Min:   a.min,
		Mean:  mean,
		Max:   a.max,
	}, nil
}

// Values returns a copy of the sample in insertion order.
func (a *Accumulator) Values() []float64 {
	res := make([]float64, len(a.values))
	copy(res, a.values)
	return res
}

func (a *Accumulator) Frequency() *Frequency {
	return a.frequency
}

func (a *Accumulator) FrequencyOf(value float64) int64 {
	return a.frequency.Count(value)
}

func (a *Accumulator) CumulativeFrequencyOf(value float64) int64 {
	return a.frequency.CumulativeCount(value)
}

func (a *Accumulator) PercentageOf(value float64) (float64, error) {
	return a.frequency.Percentage(value)
}

func (a *Accumulator) CumulativePercentageOf(value float64) (float64, error) {
	return a.frequency.CumulativePercentage(value)
}

func (a *Accumulator) sortedValues() []float64 {
	if a.sortValid {
		return a.sorted
	}
	a.sorted = append(a.sorted[:0], a.values...)
	sort.Float64s(a.sorted)
	a.sortValid = true
	return a.sorted
}
