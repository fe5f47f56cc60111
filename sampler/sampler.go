package sampler

import (
	"context"
	"time"

	"github.com/uyouii/sample-statistics/config"
	"github.com/uyouii/sample-statistics/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// how many draws happen between context checks
const checkInterval = 1024

// NewSource returns a Mersenne Twister seeded with seed, or with the
// clock when seed is 0.
func NewSource(seed uint64) *prng.MT19937 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}

// Generate draws cfg.SampleSize integers uniformly from [0, cfg.MaxValue).
func Generate(ctx context.Context, cfg config.Config) ([]int, error) {
	logger := utils.GetLogger(ctx)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid sampler config", zap.Error(err))
		return nil, err
	}

	rng := rand.New(NewSource(cfg.Seed))

	values := make([]int, cfg.SampleSize)
	for i := range values {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				logger.Warn("generate canceled", zap.Int("drawn", i), zap.Error(err))
				return nil, err
			}
		}
		values[i] = rng.Intn(cfg.MaxValue)
	}

	logger.Debug("generate sample success", zap.Int("size", cfg.SampleSize),
		zap.Int("max", cfg.MaxValue), zap.Uint64("seed", cfg.Seed))
	return values, nil
}
