package palette

import (
	"errors"
	"image/color"
	"math"

	gonum "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

type morelandKind int

const (
	morelandCoolWarm morelandKind = iota
	morelandBlackBody
	morelandKindlmann
)

// colorMapPalette evaluates a gonum color map over [0, 1].
type colorMapPalette struct {
	cm gonum.ColorMap
}

func newMoreland(kind morelandKind) Palette {
	var cm gonum.ColorMap
	switch kind {
	case morelandBlackBody:
		cm = moreland.BlackBody()
	case morelandKindlmann:
		cm = moreland.Kindlmann()
	default:
		cm = moreland.SmoothBlueRed()
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return colorMapPalette{cm: cm}
}

// FromColorMap wraps any gonum color map as a Palette. The map's range is
// reset to [0, 1].
func FromColorMap(cm gonum.ColorMap) Palette {
	cm.SetMin(0)
	cm.SetMax(1)
	return colorMapPalette{cm: cm}
}

func (p colorMapPalette) At(t float64) color.Color {
	if math.IsNaN(t) {
		return BadColor
	}
	c, err := p.cm.At(t)
	switch {
	case err == nil:
		return c
	case errors.Is(err, gonum.ErrUnderflow):
		c, _ = p.cm.At(p.cm.Min())
	case errors.Is(err, gonum.ErrOverflow):
		c, _ = p.cm.At(p.cm.Max())
	}
	if c == nil {
		return color.Black
	}
	return c
}
