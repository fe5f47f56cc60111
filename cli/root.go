package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/sample-statistics/config"
	"github.com/uyouii/sample-statistics/report"
	"github.com/uyouii/sample-statistics/sampler"
	"github.com/uyouii/sample-statistics/utils"
	"go.uber.org/zap"
)

const envPrefix = "SIMPLESTATS"

// NewRootCmd builds the simplestats command. Every flag can also be set
// through the environment, e.g. SIMPLESTATS_SEED=42.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "simplestats",
		Short: "Print descriptive statistics of a random sample",
		Long: `simplestats draws a sample of uniformly distributed integers and prints
min, mean, max, percentiles, skewness, kurtosis and the frequency of one value.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Int("size", defaults.SampleSize, "number of values to draw")
	flags.Int("max", defaults.MaxValue, "values are drawn from [0, max)")
	flags.Uint64("seed", defaults.Seed, "random seed, 0 seeds from the clock")
	flags.Int("value", defaults.TargetValue, "value to report frequencies for")
	flags.String("format", defaults.Format, "output format: text or json")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg := config.Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("log-level: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := utils.GetLogger(ctx)

	values, err := sampler.Generate(ctx, cfg)
	if err != nil {
		logger.Error("Generate failed", zap.Error(err))
		return err
	}

	r, err := report.Build(ctx, cfg, values)
	if err != nil {
		logger.Error("Build report failed", zap.Error(err))
		return err
	}

	if cfg.Format == config.FormatJSON {
		return report.WriteJSON(out, r)
	}
	return report.WriteText(out, r)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
