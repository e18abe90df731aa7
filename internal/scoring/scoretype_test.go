// internal/scoring/scoretype_test.go
package scoring

import (
	"math"
	"testing"
)

func TestParseScoreType(t *testing.T) {
	st, err := ParseScoreType(" T_Score ")
	if err != nil {
		t.Fatalf("ParseScoreType failed: %v", err)
	}
	if st != ScoreT {
		t.Errorf("parsed %q, want %q", st, ScoreT)
	}
	if _, err := ParseScoreType("iq_points"); err == nil {
		t.Error("unknown score type should fail")
	}
}

func TestToZ(t *testing.T) {
	tests := []struct {
		value float64
		st    ScoreType
		want  float64
	}{
		{115, ScoreStandard, 1.0},
		{85, ScoreStandard, -1.0},
		{13, ScoreScaled, 1.0},
		{40, ScoreT, -1.0},
		{-0.5, ScoreZ, -0.5},
		{50, ScorePercentile, 0},
	}
	for _, tt := range tests {
		got, err := ToZ(tt.value, tt.st)
		if err != nil {
			t.Fatalf("ToZ(%v, %s) failed: %v", tt.value, tt.st, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ToZ(%v, %s) = %v, want %v", tt.value, tt.st, got, tt.want)
		}
	}
	if _, err := ToZ(1, ScoreType("bogus")); err == nil {
		t.Error("unknown score type should fail")
	}
}
