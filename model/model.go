package model

import "fmt"

type QuantileValue struct {
	Quantile float64 `json:"q"`
	Value    float64 `json:"v"`
}

// Summary holds the aggregates that do not need the sample to be sorted.
type Summary struct {
	Count int64   `json:"count"`
	Min   float64 `json:"min"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
}

type FrequencyEntry struct {
	Value                float64 `json:"value"`
	Count                int64   `json:"count"`
	CumulativeCount      int64   `json:"cum_count"`
	Percentage           float64 `json:"pct"`
	CumulativePercentage float64 `json:"cum_pct"`
}

type Report struct {
	SampleSize int    `json:"sample_size"`
	MaxValue   int    `json:"max_value"`
	Seed       uint64 `json:"seed"`

	Streaming   Summary         `json:"streaming"`
	Percentiles []QuantileValue `json:"percentiles"`
	Skewness    float64         `json:"skewness"`
	Kurtosis    float64         `json:"kurtosis"`

	// Direct is recomputed from the raw values, not from the accumulator.
	Direct Summary `json:"direct"`

	Frequency FrequencyEntry `json:"frequency"`
}

func (r *Report) Percentile(p float64) (QuantileValue, bool) {
	if r == nil {
		return QuantileValue{}, false
	}
	for _, q := range r.Percentiles {
		if q.Quantile == p {
			return q, true
		}
	}
	return QuantileValue{}, false
}

func (r *Report) DebugString() string {
	return fmt.Sprintf("size: %v, max: %v, seed: %v, percentiles: %+v",
		r.SampleSize, r.MaxValue, r.Seed, r.Percentiles)
}
