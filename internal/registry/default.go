// internal/registry/default.go
package registry

import "github.com/mwiater/neuroscore/internal/scoring"

// Default returns the built-in registry covering the standard clinical
// domains. Section numbers follow the report's fixed chapter order.
func Default() []Entry {
	return []Entry{
		{
			Domains:    []string{"General Cognitive Ability", "Intelligence/General Ability"},
			PhenoKey:   "iq",
			DataSource: "neurocog",
			Section:    2,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreStandard, scoring.ScorePercentile},
		},
		{
			Domains:    []string{"Academic Skills", "Academics"},
			PhenoKey:   "academics",
			DataSource: "neurocog",
			Section:    3,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreStandard, scoring.ScorePercentile},
		},
		{
			Domains:    []string{"Verbal/Language"},
			PhenoKey:   "verbal",
			DataSource: "neurocog",
			Section:    4,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT},
		},
		{
			Domains:    []string{"Visual Perception/Construction"},
			PhenoKey:   "spatial",
			DataSource: "neurocog",
			Section:    5,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT},
		},
		{
			Domains:    []string{"Memory"},
			PhenoKey:   "memory",
			DataSource: "neurocog",
			Section:    6,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT},
		},
		{
			Domains:    []string{"Attention/Executive"},
			PhenoKey:   "executive",
			DataSource: "neurocog",
			Section:    7,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT},
		},
		{
			Domains:    []string{"Motor"},
			PhenoKey:   "motor",
			DataSource: "neurocog",
			Section:    8,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreZ},
		},
		{
			Domains:    []string{"Social Cognition"},
			PhenoKey:   "social",
			DataSource: "neurocog",
			Section:    9,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreStandard},
		},
		{
			Domains:     []string{"ADHD", "ADHD/Executive Function"},
			PhenoKey:    "adhd",
			DataSource:  "neurobehav",
			Section:     10,
			ScoreTypes:  []scoring.ScoreType{scoring.ScoreT},
			MultiRater:  true,
			AgeVariants: []AgeGroup{AgeAdult, AgeChild},
			RatersByAge: map[AgeGroup][]string{
				AgeAdult: {"self", "observer"},
				AgeChild: {"self", "parent", "teacher"},
			},
		},
		{
			Domains:     []string{"Emotional/Behavioral/Social/Personality", "Behavioral/Emotional/Social"},
			PhenoKey:    "emotion",
			DataSource:  "neurobehav",
			Section:     11,
			ScoreTypes:  []scoring.ScoreType{scoring.ScoreT},
			MultiRater:  true,
			AgeVariants: []AgeGroup{AgeAdult, AgeChild},
			RatersByAge: map[AgeGroup][]string{
				AgeAdult: {"self"},
				AgeChild: {"self", "parent", "teacher"},
			},
		},
		{
			Domains:     []string{"Adaptive Functioning"},
			PhenoKey:    "adaptive",
			DataSource:  "neurobehav",
			Section:     12,
			ScoreTypes:  []scoring.ScoreType{scoring.ScoreStandard},
			MultiRater:  true,
			AgeVariants: []AgeGroup{AgeChild},
			Raters:      []string{"parent", "teacher"},
		},
		{
			Domains:    []string{"Daily Living"},
			PhenoKey:   "daily_living",
			DataSource: "neurobehav",
			Section:    13,
			ScoreTypes: []scoring.ScoreType{scoring.ScoreT},
		},
	}
}
