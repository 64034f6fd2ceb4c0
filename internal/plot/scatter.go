package plot

import (
	"math"

	"github.com/smithberg/aspectlab/internal/circstat"
)

// Scatter renders observations on the rim of a compass circle, north
// up. Repeated observations at the same bearing stack inward so
// multiplicity stays visible. The mean-direction arrow runs from the
// center with length proportional to the mean resultant length.
func Scatter(degrees []float64, size int) string {
	c := newCanvas(size, size/2)
	cx, cy := size, size
	rim := float64(size) - 2

	c.circle(cx, cy, int(rim))

	// stack duplicates inward
	seen := map[float64]int{}
	for _, d := range degrees {
		key := circstat.NormalizeDeg(d)
		r := rim - float64(4*seen[key])
		seen[key]++
		if r < 4 {
			r = 4
		}
		x, y := bearingXY(cx, cy, key, r)
		c.set(x, y)
		// 2x2 blob so single points stand out against the rim
		c.set(x+1, y)
		c.set(x, y+1)
		c.set(x+1, y+1)
	}

	drawMeanArrow(c, cx, cy, rim, degrees)
	return c.String()
}

func drawMeanArrow(c *canvas, cx, cy int, rim float64, degrees []float64) {
	d := circstat.Describe(degrees)
	if d.N == 0 || math.IsNaN(d.MeanDeg) || d.Resultant < 1e-9 {
		return
	}

	length := rim * d.Resultant
	tipX, tipY := bearingXY(cx, cy, d.MeanDeg, length)
	c.line(cx, cy, tipX, tipY)

	// arrowhead: two short barbs swept back from the tip
	for _, offset := range []float64{150, 210} {
		bx, by := bearingXY(tipX, tipY, d.MeanDeg+offset, 5)
		c.line(tipX, tipY, bx, by)
	}
}
