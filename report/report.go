package report

import (
	"context"
	"fmt"

	"github.com/uyouii/sample-statistics/config"
	"github.com/uyouii/sample-statistics/model"
	"github.com/uyouii/sample-statistics/stats"
	"github.com/uyouii/sample-statistics/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ReportPercentiles = []float64{90, 50}

// Build feeds values into one accumulator and collects every statistic
// of the report. It fails as a whole, there are no partial reports.
func Build(ctx context.Context, cfg config.Config, values []int) (report *model.Report, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Build recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("valueCnt", len(values)))
			report, err = nil, fmt.Errorf("build report: %v", r)
		}
	}()

	acc := stats.NewAccumulator()
	acc.AddInts(values...)

	streaming, err := acc.Summary()
	if err != nil {
		logger.Error("accumulator Summary failed", zap.Error(err))
		return nil, err
	}

	percentiles, err := acc.Percentiles(ReportPercentiles...)
	if err != nil {
		logger.Error("accumulator Percentiles failed", zap.Error(err))
		return nil, err
	}

	skewness, err := acc.Skewness()
	if err != nil {
		logger.Error("accumulator Skewness failed", zap.Error(err))
		return nil, err
	}

	kurtosis, err := acc.Kurtosis()
	if err != nil {
		logger.Error("accumulator Kurtosis failed", zap.Error(err))
		return nil, err
	}

	direct, err := directSummary(stats.Float64s(values))
	if err != nil {
		logger.Error("directSummary failed", zap.Error(err))
		return nil, err
	}

	frequency, err := acc.Frequency().Entry(float64(cfg.TargetValue))
	if err != nil {
		logger.Error("frequency Entry failed", zap.Error(err), zap.Int("value", cfg.TargetValue))
		return nil, err
	}

	report = &model.Report{
		SampleSize:  len(values),
		MaxValue:    cfg.MaxValue,
		Seed:        cfg.Seed,
		Streaming:   streaming,
		Percentiles: percentiles,
		Skewness:    skewness,
		Kurtosis:    kurtosis,
		Direct:      direct,
		Frequency:   frequency,
	}

	logger.Debug("build report success", zap.String("report", report.DebugString()))
	return report, nil
}

func directSummary(x []float64) (model.Summary, error) {
	minValue, minErr := stats.MinOf(x)
	maxValue, maxErr := stats.MaxOf(x)
	mean, meanErr := stats.MeanOf(x)
	if err := multierr.Combine(minErr, maxErr, meanErr); err != nil {
		return model.Summary{}, err
	}
	return model.Summary{
		Count: int64(len(x)),
		Min:   minValue,
		Mean:  mean,
		Max:   maxValue,
	}, nil
}
