package plot

import (
	"math"
	"strings"
)

// Braille patterns: each character cell holds 2x4 sub-pixels,
// unicode offset 0x2800.
var brailleBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// canvas is a braille drawing surface. Coordinates are sub-pixels:
// (width*2) x (height*4).
type canvas struct {
	width, height int
	grid          [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{width: w, height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.width || row >= c.height {
		return
	}
	c.grid[row][col] |= rune(brailleBits[y%4][x%2])
}

// line draws with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// circle draws an outline by angular sweep; fine enough for the
// sub-pixel grid.
func (c *canvas) circle(cx, cy, r int) {
	steps := 8 * r
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(cx+int(math.Round(float64(r)*math.Cos(a))), cy+int(math.Round(float64(r)*math.Sin(a))))
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// bearingXY maps a geographic bearing (0° = north, clockwise) and
// radius onto canvas sub-pixels with north at the top.
func bearingXY(cx, cy int, deg, r float64) (int, int) {
	rad := deg * math.Pi / 180
	x := float64(cx) + r*math.Sin(rad)
	y := float64(cy) - r*math.Cos(rad)
	return int(math.Round(x)), int(math.Round(y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
