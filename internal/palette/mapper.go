package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	gonum "gonum.org/v1/plot/palette"
)

// ColorMapper normalizes value into [a, b] and returns the palette color
// as "#rrggbb". Values outside the range are passed through unclamped.
// A degenerate range (a == b) always yields the color at position 0.
// NaN maps to BadColor.
func ColorMapper(value, a, b float64, p Palette) string {
	if math.IsNaN(value) {
		return Hex(BadColor)
	}
	if b-a == 0 {
		return Hex(p.At(0))
	}
	return Hex(p.At((value - a) / (b - a)))
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	cc, _ := colorful.MakeColor(opaque(c))
	return cc.Clamped().Hex()
}

// opaque avoids go-colorful rejecting fully transparent colors.
func opaque(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.RGBA64{}
	}
	if a == 0xffff {
		return c
	}
	// un-premultiply
	return color.RGBA64{
		R: uint16(r * 0xffff / a),
		G: uint16(g * 0xffff / a),
		B: uint16(b * 0xffff / a),
		A: 0xffff,
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WithAlpha returns c with the given opacity in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	cc, _ := colorful.MakeColor(opaque(c))
	r, g, b := cc.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// Samples evaluates p at n evenly spaced positions across [0, 1].
func Samples(p Palette, n int) []color.Color {
	if n < 1 {
		return nil
	}
	out := make([]color.Color, n)
	if n == 1 {
		out[0] = p.At(0)
		return out
	}
	for i := range out {
		out[i] = p.At(float64(i) / float64(n-1))
	}
	return out
}

// ColorMap exposes p as a gonum color map over [min, max] so it can drive
// a plotter.ColorBar.
type ColorMap struct {
	src      Palette
	min, max float64
	alpha    float64
}

// NewColorMap returns a gonum-compatible color map for p spanning [min, max].
func NewColorMap(p Palette, min, max float64) *ColorMap {
	return &ColorMap{src: p, min: min, max: max, alpha: 1}
}

func (m *ColorMap) At(v float64) (color.Color, error) {
	if m.max == m.min {
		return WithAlpha(m.src.At(0), m.alpha), nil
	}
	return WithAlpha(m.src.At((v-m.min)/(m.max-m.min)), m.alpha), nil
}

func (m *ColorMap) Max() float64       { return m.max }
func (m *ColorMap) Min() float64       { return m.min }
func (m *ColorMap) SetMax(v float64)   { m.max = v }
func (m *ColorMap) SetMin(v float64)   { m.min = v }
func (m *ColorMap) Alpha() float64     { return m.alpha }
func (m *ColorMap) SetAlpha(a float64) { m.alpha = a }

func (m *ColorMap) Palette(n int) gonum.Palette {
	return colors(Samples(m.src, n))
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
