// internal/scoring/scoring_test.go
package scoring

import (
	"math"
	"testing"
)

// TestClassifyBoundaries walks every inclusive boundary of the band table in
// both directions and verifies that each percentile lands in the expected
// band. The boundaries are a presentation contract consumed by reports, so
// any drift here is a user-visible regression.
func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		percentile float64
		want       Band
	}{
		{100, BandExceptionallyHigh},
		{98, BandExceptionallyHigh},
		{97, BandAboveAverage},
		{91, BandAboveAverage},
		{90, BandHighAverage},
		{75, BandHighAverage},
		{74, BandAverage},
		{25, BandAverage},
		{24, BandLowAverage},
		{9, BandLowAverage},
		{8, BandBelowAverage},
		{2, BandBelowAverage},
		{1, BandExceptionallyLow},
		{0, BandExceptionallyLow},
	}
	for _, tc := range cases {
		got := Classify(&tc.percentile)
		if got == nil {
			t.Fatalf("Classify(%v) returned nil, want %q", tc.percentile, tc.want)
		}
		if *got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.percentile, *got, tc.want)
		}
	}
}

func TestClassifyMissing(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Fatalf("Classify(nil) = %v, want nil", *got)
	}
	nan := math.NaN()
	if got := Classify(&nan); got != nil {
		t.Fatalf("Classify(NaN) = %v, want nil", *got)
	}
}

func TestZPercentileRoundTrip(t *testing.T) {
	for _, z := range []float64{-2.5, -1, -0.33, 0, 0.5, 1.96, 3} {
		p := ZToPercentile(z)
		back := PercentileToZ(p)
		if math.Abs(back-z) > 1e-6 {
			t.Errorf("round trip for z=%v drifted to %v (percentile %v)", z, back, p)
		}
	}
}

func TestPercentileToZKnownValues(t *testing.T) {
	if z := PercentileToZ(50); math.Abs(z) > 1e-9 {
		t.Errorf("PercentileToZ(50) = %v, want 0", z)
	}
	if z := PercentileToZ(97.7249868); math.Abs(z-2) > 1e-4 {
		t.Errorf("PercentileToZ(97.72) = %v, want ~2", z)
	}
}

// TestPercentileToZClamping verifies the documented clipping policy: the
// inverse CDF is undefined at 0 and 100, so both ends clamp to the value at
// 0.1 / 99.9 instead of returning infinities.
func TestPercentileToZClamping(t *testing.T) {
	lo := PercentileToZ(0)
	hi := PercentileToZ(100)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		t.Fatalf("clamping failed: got %v and %v", lo, hi)
	}
	if lo != PercentileToZ(0.1) {
		t.Errorf("PercentileToZ(0) = %v, want the clamped value %v", lo, PercentileToZ(0.1))
	}
	if hi != PercentileToZ(99.9) {
		t.Errorf("PercentileToZ(100) = %v, want the clamped value %v", hi, PercentileToZ(99.9))
	}
	if math.Abs(hi-3.09) > 0.01 {
		t.Errorf("PercentileToZ(99.9) = %v, want ~3.09", hi)
	}
}
