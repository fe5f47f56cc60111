package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorEmptySample is returned by any statistic that needs at least one observation.
	ErrorEmptySample = errors.New("empty sample")

	// ErrorInsufficientData is returned when a statistic needs more observations
	// than the sample holds, e.g. skewness below 3 or kurtosis below 4.
	ErrorInsufficientData = errors.New("insufficient data")

	ErrorInvalidArgument = errors.New("invalid argument")
)
