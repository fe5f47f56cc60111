package stats

import (
	"sort"

	"github.com/uyouii/sample-statistics/common"
	"github.com/uyouii/sample-statistics/model"
)

// Frequency counts occurrences of each distinct value.
type Frequency struct {
	counts map[float64]int64
	total  int64

	keys      []float64 // distinct values ascending, rebuilt lazily
	keysValid bool
}

func NewFrequency() *Frequency {
	return &Frequency{
		counts: map[float64]int64{},
	}
}

func (f *Frequency) Add(value float64) {
	if _, ok := f.counts[value]; !ok {
		f.keysValid = false
	}
	f.counts[value]++
	f.total++
}

func (f *Frequency) Total() int64 {
	return f.total
}

func (f *Frequency) UniqueCount() int {
	return len(f.counts)
}

func (f *Frequency) Count(value float64) int64 {
	return f.counts[value]
}

// CumulativeCount is the number of values less than or equal to value.
func (f *Frequency) CumulativeCount(value float64) int64 {
	var res int64
	for _, k := range f.sortedKeys() {
		if k > value {
			break
		}
		res += f.counts[k]
	}
	return res
}

func (f *Frequency) Percentage(value float64) (float64, error) {
	if f.total == 0 {
		return 0, common.ErrorEmptySample
	}
	return float64(f.Count(value)) / float64(f.total), nil
}

func (f *Frequency) CumulativePercentage(value float64) (float64, error) {
	if f.total == 0 {
		return 0, common.ErrorEmptySample
	}
	return float64(f.CumulativeCount(value)) / float64(f.total), nil
}

// Mode returns every value sharing the highest count, ascending.
func (f *Frequency) Mode() []float64 {
	res := []float64{}
	var best int64
	for _, k := range f.sortedKeys() {
		switch c := f.counts[k]; {
		case c > best:
			best = c
			res = append(res[:0], k)
		case c == best:
			res = append(res, k)
		}
	}
	return res
}

func (f *Frequency) Entry(value float64) (model.FrequencyEntry, error) {
	if f.total == 0 {
		return model.FrequencyEntry{Value: value}, common.ErrorEmptySample
	}
	cumCount := f.CumulativeCount(value)
	return model.FrequencyEntry{
		Value:                value,
		Count:                f.Count(value),
		CumulativeCount:      cumCount,
		Percentage:           float64(f.Count(value)) / float64(f.total),
		CumulativePercentage: float64(cumCount) / float64(f.total),
	}, nil
}

// Entries returns one entry per distinct value, ascending by value.
func (f *Frequency) Entries() []model.FrequencyEntry {
	res := make([]model.FrequencyEntry, 0, len(f.counts))
	var cumCount int64
	for _, k := range f.sortedKeys() {
		cumCount += f.counts[k]
		res = append(res, model.FrequencyEntry{
			Value:                k,
			Count:                f.counts[k],
			CumulativeCount:      cumCount,
			Percentage:           float64(f.counts[k]) / float64(f.total),
			CumulativePercentage: float64(cumCount) / float64(f.total),
		})
	}
	return res
}

func (f *Frequency) sortedKeys() []float64 {
	if f.keysValid {
		return f.keys
	}
	f.keys = f.keys[:0]
	for k := range f.counts {
		f.keys = append(f.keys, k)
	}
	sort.Float64s(f.keys)
	f.keysValid = true
	return f.keys
}
