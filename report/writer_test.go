package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDouble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{7, "7.0"},
		{-3, "-3.0"},
		{0.0103, "0.0103"},
		{89.5, "89.5"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDouble(tt.in))
	}
}
