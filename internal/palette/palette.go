package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownPalette is returned by Lookup for names with no palette.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// DefaultName is used when no palette is requested.
const DefaultName = "jet"

// BadColor is returned by the built-in palettes for NaN positions.
var BadColor color.Color = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Palette evaluates a color at a normalized position. Positions outside
// [0, 1] are not clamped by callers; each palette decides what to return.
type Palette interface {
	At(t float64) color.Color
}

// Func adapts a plain function to a Palette.
type Func func(t float64) color.Color

func (f Func) At(t float64) color.Color { return f(t) }

// Gradient interpolates between evenly spaced color stops in Lab space.
// Positions beyond either end return the end color; NaN returns BadColor.
type Gradient struct {
	stops []colorful.Color
}

// NewGradient builds a gradient from hex color stops.
func NewGradient(hexes ...string) (*Gradient, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette: gradient needs at least one stop")
	}
	g := &Gradient{stops: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: stop %d: %w", i, err)
		}
		g.stops[i] = c
	}
	return g, nil
}

func mustGradient(hexes ...string) *Gradient {
	g, err := NewGradient(hexes...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gradient) At(t float64) color.Color {
	if math.IsNaN(t) {
		return BadColor
	}
	n := len(g.stops)
	if n == 1 || t <= 0 {
		return g.stops[0].Clamped()
	}
	if t >= 1 {
		return g.stops[n-1].Clamped()
	}
	pos := t * float64(n-1)
	i := int(pos)
	return g.stops[i].BlendLab(g.stops[i+1], pos-float64(i)).Clamped()
}

var registry = map[string]func() Palette{
	"jet": func() Palette {
		return mustGradient("#00007f", "#0000ff", "#007fff", "#00ffff", "#7fff7f", "#ffff00", "#ff7f00", "#ff0000", "#7f0000")
	},
	"viridis": func() Palette {
		return mustGradient("#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725")
	},
	"plasma": func() Palette {
		return mustGradient("#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679", "#e56b5d", "#f89441", "#fdc328", "#f0f921")
	},
	"hot": func() Palette {
		return mustGradient("#0b0000", "#ff0000", "#ffff00", "#ffffff")
	},
	"gray": func() Palette {
		return mustGradient("#000000", "#ffffff")
	},
	"coolwarm":  func() Palette { return newMoreland(morelandCoolWarm) },
	"blackbody": func() Palette { return newMoreland(morelandBlackBody) },
	"kindlmann": func() Palette { return newMoreland(morelandKindlmann) },
}

// Lookup returns the named palette. Names are case-insensitive and the
// empty name selects DefaultName.
func Lookup(name string) (Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPalette, name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
