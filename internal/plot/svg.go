package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/smithberg/aspectlab/internal/circstat"
)

// SVG rendering of the same two plot kinds the terminal renderers
// produce, for inclusion in reports.

func svgHeader(sb *strings.Builder, size int, title string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="18" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#222222">%s</text>
`, size, size, size, size, size/2, title))
}

func svgCompassFrame(sb *strings.Builder, cx, cy, r float64) {
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#888888"/>
`, cx, cy, r))
	for _, card := range []struct {
		label string
		deg   float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}} {
		x, y := svgBearingXY(cx, cy, card.deg, r+14)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="12" fill="#555555">%s</text>
`, x, y, card.label))
	}
}

func svgBearingXY(cx, cy, deg, r float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// RoseSVG renders a circular histogram as filled wedges, north up.
func RoseSVG(degrees []float64, nbins, size int, color, title string) string {
	bins := Bins(degrees, nbins)
	maxCount := 0
	for _, b := range bins {
		if b > maxCount {
			maxCount = b
		}
	}

	cx, cy := float64(size)/2, float64(size)/2+8
	rMax := float64(size)/2 - 32

	var sb strings.Builder
	svgHeader(&sb, size, title)
	svgCompassFrame(&sb, cx, cy, rMax)

	width := 360.0 / float64(nbins)
	for i, count := range bins {
		if count == 0 || maxCount == 0 {
			continue
		}
		r := rMax * Prop * math.Sqrt(float64(count)/float64(maxCount))
		a0 := float64(i) * width
		a1 := a0 + width
		x0, y0 := svgBearingXY(cx, cy, a0, r)
		x1, y1 := svgBearingXY(cx, cy, a1, r)
		// wedge: center -> arc edge -> arc -> back
		sb.WriteString(fmt.Sprintf(`<path d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 0 1 %.1f,%.1f Z" fill="%s" fill-opacity="0.7" stroke="%s"/>
`, cx, cy, x0, y0, r, r, x1, y1, color, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ScatterSVG renders observations on the compass rim with the
// mean-direction arrow, matching Scatter.
func ScatterSVG(degrees []float64, size int, color, title string) string {
	cx, cy := float64(size)/2, float64(size)/2+8
	rim := float64(size)/2 - 32

	var sb strings.Builder
	svgHeader(&sb, size, title)
	svgCompassFrame(&sb, cx, cy, rim)

	seen := map[float64]int{}
	for _, d := range degrees {
		key := circstat.NormalizeDeg(d)
		r := rim - float64(7*seen[key])
		seen[key]++
		if r < 8 {
			r = 8
		}
		x, y := svgBearingXY(cx, cy, key, r)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x, y, color))
	}

	desc := circstat.Describe(degrees)
	if desc.N > 0 && !math.IsNaN(desc.MeanDeg) && desc.Resultant > 1e-9 {
		tipX, tipY := svgBearingXY(cx, cy, desc.MeanDeg, rim*desc.Resultant)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#222222" stroke-width="2"/>
`, cx, cy, tipX, tipY))
		bx0, by0 := svgBearingXY(tipX, tipY, desc.MeanDeg+150, 9)
		bx1, by1 := svgBearingXY(tipX, tipY, desc.MeanDeg+210, 9)
		sb.WriteString(fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="#222222"/>
`, tipX, tipY, bx0, by0, bx1, by1))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
