package viz

import (
	"math"
	"strings"
)

// braille dot bits for a 2x4 cell, indexed [row][col]
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille raster with a world-coordinate viewport.
// Each character cell holds 2x4 dots.
type Canvas struct {
	cols, rows int
	cells      []uint8

	minX, maxX float64
	minY, maxY float64
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
		minX:  -1,
		maxX:  1,
		minY:  -1,
		maxY:  1,
	}
}

// SetViewport maps world x in [minX, maxX] and y in [minY, maxY] onto the
// canvas. y grows upward.
func (c *Canvas) SetViewport(minX, maxX, minY, maxY float64) {
	c.minX, c.maxX = minX, maxX
	c.minY, c.maxY = minY, maxY
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0
	}
}

func (c *Canvas) dot(px, py int) {
	if px < 0 || py < 0 || px >= c.cols*2 || py >= c.rows*4 {
		return
	}
	c.cells[(py/4)*c.cols+px/2] |= dotBits[py%4][px%2]
}

func (c *Canvas) toDots(x, y float64) (int, int, bool) {
	if c.maxX == c.minX || c.maxY == c.minY || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	fx := (x - c.minX) / (c.maxX - c.minX)
	fy := (c.maxY - y) / (c.maxY - c.minY)
	return int(math.Round(fx * float64(c.cols*2-1))), int(math.Round(fy * float64(c.rows*4-1))), true
}

// Point plots a world-coordinate point; points outside the viewport are dropped.
func (c *Canvas) Point(x, y float64) {
	if px, py, ok := c.toDots(x, y); ok {
		c.dot(px, py)
	}
}

// Line draws a world-coordinate segment with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	ax, ay, ok0 := c.toDots(x0, y0)
	bx, by, ok1 := c.toDots(x1, y1)
	if !ok0 || !ok1 {
		return
	}

	dx, dy := absInt(bx-ax), -absInt(by-ay)
	sx, sy := sign(bx-ax), sign(by-ay)
	e := dx + dy
	for {
		c.dot(ax, ay)
		if ax == bx && ay == by {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			ax += sx
		} else {
			e += dx
			ay += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			b.WriteRune(rune(brailleBase + int(c.cells[r*c.cols+col])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
