// internal/scoring/scoring.go
// Package scoring converts between z-scores and percentiles and maps
// percentiles onto qualitative performance bands.
package scoring

import (
	"math"
)

// Band is a qualitative performance label derived from a percentile value.
type Band string

const (
	// BandExceptionallyHigh covers percentiles of 98 and above.
	BandExceptionallyHigh Band = "Exceptionally High"
	// BandAboveAverage covers percentiles 91 through 97.
	BandAboveAverage Band = "Above Average"
	// BandHighAverage covers percentiles 75 through 90.
	BandHighAverage Band = "High Average"
	// BandAverage covers percentiles 25 through 74.
	BandAverage Band = "Average"
	// BandLowAverage covers percentiles 9 through 24.
	BandLowAverage Band = "Low Average"
	// BandBelowAverage covers percentiles 2 through 8.
	BandBelowAverage Band = "Below Average"
	// BandExceptionallyLow covers percentiles below 2.
	BandExceptionallyLow Band = "Exceptionally Low"
)

// Classify maps a percentile onto its performance band. A nil or NaN
// percentile yields nil: rows without a usable score carry no band.
// The ranges are evaluated high to low with inclusive boundaries.
func Classify(percentile *float64) *Band {
	if percentile == nil || math.IsNaN(*percentile) {
		return nil
	}
	p := *percentile
	var band Band
	switch {
	case p >= 98:
		band = BandExceptionallyHigh
	case p >= 91:
		band = BandAboveAverage
	case p >= 75:
		band = BandHighAverage
	case p >= 25:
		band = BandAverage
	case p >= 9:
		band = BandLowAverage
	case p >= 2:
		band = BandBelowAverage
	default:
		band = BandExceptionallyLow
	}
	return &band
}

// Bands lists every band from highest to lowest, for legends and summaries.
func Bands() []Band {
	return []Band{
		BandExceptionallyHigh,
		BandAboveAverage,
		BandHighAverage,
		BandAverage,
		BandLowAverage,
		BandBelowAverage,
		BandExceptionallyLow,
	}
}
