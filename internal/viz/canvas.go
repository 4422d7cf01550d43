package viz

import (
	"math"
	"strings"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/simplex"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a character grid where every cell holds 2x4 braille dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set turns on the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sketch draws the line and polyline elements of fig onto a w x h
// character canvas. Fills are ignored. Braille dots are close to square,
// so one uniform scale keeps the triangle's shape.
func Sketch(fig *figure.Figure, w, h int) *Canvas {
	c := NewCanvas(w, h)
	b := fig.Bounds()
	pw, ph := float64(w*2-1), float64(h*4-1)
	scale := math.Min(pw/(b.XMax-b.XMin), ph/(b.YMax-b.YMin))

	px := func(p simplex.XY) (int, int) {
		x := (p.X - b.XMin) * scale
		y := ph - (p.Y-b.YMin)*scale
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, e := range fig.Elements {
		if e.Kind == figure.KindFill {
			continue
		}
		for i := 1; i < len(e.Points); i++ {
			x0, y0 := px(e.Points[i-1])
			x1, y1 := px(e.Points[i])
			c.DrawLine(x0, y0, x1, y1)
		}
		if len(e.Points) == 1 {
			c.Set(px(e.Points[0]))
		}
	}
	return c
}
