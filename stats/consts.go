package stats

const (
	MinSkewnessCount = 3
	MinKurtosisCount = 4

	// below this variance the sample is treated as constant and the
	// standardized moments are reported as 0.
	MinMomentVariance = 1e-19
)
