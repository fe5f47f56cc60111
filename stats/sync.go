package stats

import (
	"sync"

	"github.com/uyouii/sample-statistics/model"
)

// SyncAccumulator guards an Accumulator with one exclusive lock. Queries
// take the write lock too because they may rebuild the sorted caches.
type SyncAccumulator struct {
	lock sync.Mutex
	acc  *Accumulator
}

func NewSyncAccumulator() *SyncAccumulator {
	return &SyncAccumulator{
		acc: NewAccumulator(),
	}
}

func (s *SyncAccumulator) Add(value float64) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Add(value)
}

func (s *SyncAccumulator) Count() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Count()
}

func (s *SyncAccumulator) Summary() (model.Summary, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Summary()
}

func (s *SyncAccumulator) Percentile(p float64) (float64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Percentile(p)
}

func (s *SyncAccumulator) Skewness() (float64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Skewness()
}

func (s *SyncAccumulator) Kurtosis() (float64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.Kurtosis()
}

func (s *SyncAccumulator) FrequencyOf(value float64) int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.FrequencyOf(value)
}

func (s *SyncAccumulator) CumulativeFrequencyOf(value float64) int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.CumulativeFrequencyOf(value)
}

func (s *SyncAccumulator) PercentageOf(value float64) (float64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.acc.PercentageOf(value)
}

// Do runs fn with the lock held, for callers that need several
// queries to observe the same sample.
func (s *SyncAccumulator) Do(fn func(acc *Accumulator) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return fn(s.acc)
}
