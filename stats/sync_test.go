package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncAccumulator_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	acc := NewSyncAccumulator()
	workers, perWorker := 8, 250

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, acc.Add(float64(i%10)))
				_, _ = acc.Percentile(50)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, int64(workers*perWorker), acc.Count())
	assert.Equal(t, int64(workers*perWorker/10), acc.FrequencyOf(3))
	assert.Equal(t, int64(workers*perWorker), acc.CumulativeFrequencyOf(9))

	pct, err := acc.PercentageOf(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, pct, 1e-9)

	summary, err := acc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Min)
	assert.Equal(t, 9.0, summary.Max)
	assert.InDelta(t, 4.5, summary.Mean, 1e-9)

	skew, err := acc.Skewness()
	require.NoError(t, err)
	assert.InDelta(t, 0, skew, 1e-9)
	_, err = acc.Kurtosis()
	require.NoError(t, err)

	err = acc.Do(func(a *Accumulator) error {
		assert.Equal(t, a.Count(), int64(len(a.Values())))
		return nil
	})
	assert.NoError(t, err)
}
