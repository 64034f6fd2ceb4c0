package circstat

import (
	"math"
	"testing"
)

func TestDescribeSingleDirection(t *testing.T) {
	d := Describe([]float64{90, 90, 90})

	if math.Abs(d.MeanDeg-90) > 1e-9 {
		t.Errorf("expected mean 90, got %f", d.MeanDeg)
	}
	if math.Abs(d.Resultant-1) > 1e-9 {
		t.Errorf("expected resultant 1, got %f", d.Resultant)
	}
	if d.N != 3 {
		t.Errorf("expected n 3, got %d", d.N)
	}
}

func TestDescribeWrapsAroundNorth(t *testing.T) {
	// 350° and 10° straddle north; the mean must be 0, not 180.
	d := Describe([]float64{350, 10})

	if math.Abs(d.MeanDeg) > 1e-6 && math.Abs(d.MeanDeg-360) > 1e-6 {
		t.Errorf("expected mean near 0, got %f", d.MeanDeg)
	}
	expected := math.Cos(Radians(10))
	if math.Abs(d.Resultant-expected) > 1e-9 {
		t.Errorf("expected resultant %f, got %f", expected, d.Resultant)
	}
}

func TestDescribeOpposedDirections(t *testing.T) {
	d := Describe([]float64{0, 180})

	if d.Resultant > 1e-9 {
		t.Errorf("expected resultant near 0, got %f", d.Resultant)
	}
	if math.Abs(d.Variance-1) > 1e-9 {
		t.Errorf("expected variance near 1, got %f", d.Variance)
	}
}

func TestDescribeBounds(t *testing.T) {
	samples := [][]float64{
		{12, 340, 65, 128, 255, 301, 7},
		{0, 90, 180, 270},
		{359.9, 0.1},
		{45},
	}

	for _, s := range samples {
		d := Describe(s)
		if d.MeanDeg < 0 || d.MeanDeg >= 360 {
			t.Errorf("mean %f out of [0,360) for %v", d.MeanDeg, s)
		}
		if d.Resultant < 0 || d.Resultant > 1 {
			t.Errorf("resultant %f out of [0,1] for %v", d.Resultant, s)
		}
	}
}

func TestDescribeEmpty(t *testing.T) {
	d := Describe(nil)

	if !math.IsNaN(d.MeanDeg) {
		t.Errorf("expected NaN mean for empty sample, got %f", d.MeanDeg)
	}
	if d.Resultant != 0 {
		t.Errorf("expected zero resultant, got %f", d.Resultant)
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct{ in, out float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{720.5, 0.5},
		{359.999, 359.999},
	}

	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); math.Abs(got-tt.out) > 1e-9 {
			t.Errorf("NormalizeDeg(%f) = %f, want %f", tt.in, got, tt.out)
		}
	}
}
