package circstat

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Radians converts a bearing in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDeg maps an angle onto [0, 360).
func NormalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 { // tiny negatives round back up to 360
		d = 0
	}
	return d
}

// Descriptive summarizes one directional sample.
type Descriptive struct {
	N         int
	MeanDeg   float64 // mean direction, [0, 360)
	Resultant float64 // mean resultant length, [0, 1]
	Variance  float64 // circular variance, 1 - Resultant
}

// Describe computes the circular mean direction and mean resultant
// length of a sample of bearings in degrees. An empty sample yields
// NaN mean and zero resultant.
func Describe(degrees []float64) Descriptive {
	d := Descriptive{N: len(degrees)}
	if d.N == 0 {
		d.MeanDeg = math.NaN()
		d.Variance = 1
		return d
	}

	cosines := make([]float64, len(degrees))
	sines := make([]float64, len(degrees))
	for i, deg := range degrees {
		rad := Radians(deg)
		cosines[i] = math.Cos(rad)
		sines[i] = math.Sin(rad)
	}

	c := stat.Mean(cosines, nil)
	s := stat.Mean(sines, nil)

	d.Resultant = math.Hypot(c, s)
	if d.Resultant > 1 {
		d.Resultant = 1 // guard against float drift
	}
	d.Variance = 1 - d.Resultant
	d.MeanDeg = NormalizeDeg(Degrees(math.Atan2(s, c)))
	return d
}
