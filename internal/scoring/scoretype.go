// internal/scoring/scoretype.go
package scoring

import (
	"fmt"
	"strings"
)

// ScoreType tags the normative scale a raw score was reported on. Detection
// happens once through an explicit mapping table, never by pattern matching
// at call sites. The registry and the dataset loaders share this enum so a
// registry entry's score types and --score-type parsing cannot drift.
type ScoreType string

const (
	ScoreStandard   ScoreType = "standard_score"
	ScoreScaled     ScoreType = "scaled_score"
	ScoreT          ScoreType = "t_score"
	ScoreZ          ScoreType = "z_score"
	ScorePercentile ScoreType = "percentile"
)

// normParams maps each score type to the mean and standard deviation of its
// normative distribution. Percentile is absent because it converts through
// the inverse normal CDF rather than a linear transform.
var normParams = map[ScoreType]struct{ mean, sd float64 }{
	ScoreStandard: {100, 15},
	ScoreScaled:   {10, 3},
	ScoreT:        {50, 10},
	ScoreZ:        {0, 1},
}

// ParseScoreType matches a column header or config value to a score type,
// tolerating case and surrounding whitespace.
func ParseScoreType(v string) (ScoreType, error) {
	st := ScoreType(strings.ToLower(strings.TrimSpace(v)))
	switch st {
	case ScoreStandard, ScoreScaled, ScoreT, ScoreZ, ScorePercentile:
		return st, nil
	}
	return "", fmt.Errorf("unknown score type %q", v)
}

// ToZ converts a raw score of the given type to a z-score.
func ToZ(value float64, st ScoreType) (float64, error) {
	if st == ScorePercentile {
		return PercentileToZ(value), nil
	}
	p, ok := normParams[st]
	if !ok {
		return 0, fmt.Errorf("unknown score type %q", st)
	}
	return (value - p.mean) / p.sd, nil
}
