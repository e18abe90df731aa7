// internal/aggregate/observation.go
package aggregate

import (
	"math"

	"github.com/mwiater/neuroscore/internal/scoring"
)

// Observation is one row of test-score data. Labels maps category column
// names (domain, subdomain, scale, ...) to values; an empty string is a
// missing value. Z and Percentile may each be nil; a row needs at least one
// of the two to contribute to any mean.
type Observation struct {
	Labels     map[string]string
	Z          *float64
	Percentile *float64
}

// Label returns the value of a category column, or "" when missing.
func (o Observation) Label(column string) string {
	return o.Labels[column]
}

// HasColumn reports whether the observation carries the column at all,
// missing value or not.
func (o Observation) HasColumn(column string) bool {
	_, ok := o.Labels[column]
	return ok
}

// deriveScores fills whichever of z/percentile is missing from the other, so
// both means can be computed over the same row set. Rows with neither score
// are left untouched; the means ignore them.
func deriveScores(obs []Observation) []Observation {
	out := make([]Observation, len(obs))
	for i, o := range obs {
		out[i] = o
		switch {
		case o.Z == nil && o.Percentile != nil && !math.IsNaN(*o.Percentile):
			z := scoring.PercentileToZ(*o.Percentile)
			out[i].Z = &z
		case o.Percentile == nil && o.Z != nil && !math.IsNaN(*o.Z):
			p := scoring.ZToPercentile(*o.Z)
			out[i].Percentile = &p
		}
	}
	return out
}
