// internal/scoring/zscore.go
package scoring

import "math"

// Percentiles are clamped to this range before inversion; the inverse normal
// CDF is unbounded at 0 and 100.
const (
	minPercentile = 0.1
	maxPercentile = 99.9
)

// ZToPercentile converts a z-score to a percentile in [0, 100] using the
// standard normal CDF.
func ZToPercentile(z float64) float64 {
	return 100 * 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// PercentileToZ converts a percentile to a z-score via the inverse normal
// CDF. Inputs are clamped to [0.1, 99.9] so that extreme percentiles map to
// roughly ±3.09 instead of infinity.
func PercentileToZ(percentile float64) float64 {
	p := percentile
	if p < minPercentile {
		p = minPercentile
	}
	if p > maxPercentile {
		p = maxPercentile
	}
	return math.Sqrt2 * math.Erfinv(2*(p/100)-1)
}
