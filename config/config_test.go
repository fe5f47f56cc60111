package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10000, cfg.SampleSize)
	assert.Equal(t, 100, cfg.MaxValue)
	assert.Equal(t, 7, cfg.TargetValue)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr int
	}{
		{"json ok", func(c *Config) { c.Format = FormatJSON }, 0},
		{"zero size", func(c *Config) { c.SampleSize = 0 }, 1},
		{"negative max", func(c *Config) { c.MaxValue = -3 }, 1},
		{"bad format", func(c *Config) { c.Format = "xml" }, 1},
		{"everything wrong", func(c *Config) {
			c.SampleSize = -1
			c.MaxValue = 0
			c.Format = ""
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Len(t, multierr.Errors(err), tt.wantErr)
		})
	}
}
