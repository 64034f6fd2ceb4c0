package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/smithberg/aspectlab/internal/circstat"
)

// Prop scales rose wedge radii, matching the usual proportionality
// factor of rose diagrams: radius ∝ sqrt(frequency) * Prop.
const Prop = 1.0

// Bins counts observations per angular sector. Sector i covers
// [i*360/n, (i+1)*360/n) degrees; bearings are normalized first, so
// 360 lands in sector 0.
func Bins(degrees []float64, n int) []int {
	width := 360.0 / float64(n)
	bins := make([]int, n)
	for _, d := range degrees {
		i := int(circstat.NormalizeDeg(d) / width)
		if i >= n {
			i = n - 1
		}
		bins[i]++
	}
	return bins
}

// Rose renders a circular histogram on a braille canvas, north up.
// Wedge radius is proportional to the square root of the bin count so
// wedge area tracks frequency.
func Rose(degrees []float64, nbins, size int) string {
	bins := Bins(degrees, nbins)
	maxCount := 0
	for _, b := range bins {
		if b > maxCount {
			maxCount = b
		}
	}

	c := newCanvas(size, size/2)
	cx, cy := size, size // sub-pixel center
	rMax := float64(size) - 2

	c.circle(cx, cy, int(rMax))
	c.set(cx, cy)

	if maxCount == 0 {
		return c.String()
	}

	width := 360.0 / float64(nbins)
	for i, count := range bins {
		if count == 0 {
			continue
		}
		r := rMax * Prop * math.Sqrt(float64(count)/float64(maxCount))
		// sweep the sector with radial lines
		for a := 0.0; a <= width; a += 1.5 {
			x, y := bearingXY(cx, cy, float64(i)*width+a, r)
			c.line(cx, cy, x, y)
		}
	}
	return c.String()
}

// BinHistogram renders the sector counts as a linear asciigraph, one
// point per sector from north clockwise. Useful alongside the rose
// when exact counts matter.
func BinHistogram(degrees []float64, nbins, height int) string {
	bins := Bins(degrees, nbins)
	data := make([]float64, len(bins))
	for i, b := range bins {
		data[i] = float64(b)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(4*nbins),
		asciigraph.Caption(fmt.Sprintf("trees per %g° sector, N clockwise", 360.0/float64(nbins))),
	)
	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	return b.String()
}
