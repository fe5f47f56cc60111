package config

import (
	"fmt"

	"go.uber.org/multierr"
)

const (
	DefaultSampleSize  = 10000
	DefaultMaxValue    = 100
	DefaultTargetValue = 7

	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	// SampleSize is how many values are drawn.
	SampleSize int `mapstructure:"size"`
	// values are drawn uniformly from [0, MaxValue)
	MaxValue int `mapstructure:"max"`
	// Seed 0 means seed from the clock.
	Seed        uint64 `mapstructure:"seed"`
	TargetValue int    `mapstructure:"value"`
	Format      string `mapstructure:"format"`
	LogLevel    string `mapstructure:"log-level"`
}

func Default() Config {
	return Config{
		SampleSize:  DefaultSampleSize,
		MaxValue:    DefaultMaxValue,
		TargetValue: DefaultTargetValue,
		Format:      FormatText,
		LogLevel:    "info",
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error
	if c.SampleSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("size must be positive, got %d", c.SampleSize))
	}
	if c.MaxValue <= 0 {
		err = multierr.Append(err, fmt.Errorf("max must be positive, got %d", c.MaxValue))
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown format %q", c.Format))
	}
	return err
}
