package utils

import "math"

// FormatFloat rounds f to the given number of decimal places.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow10(int(round))
	return math.Round(f*pow) / pow
}
