package ternary

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
)

// ColorbarTicks returns n evenly spaced ticks across [a, b]. With
// scientific set, labels share a power of ten that is returned as offset.
func ColorbarTicks(a, b float64, n int, scientific bool) (ticks []figure.Tick, offset string) {
	if n < 2 {
		n = 2
	}
	if a == b {
		n = 1
	}
	exp := 0
	if scientific {
		if m := math.Max(math.Abs(a), math.Abs(b)); m > 0 {
			exp = int(math.Floor(math.Log10(m)))
		}
		offset = "1e" + strconv.Itoa(exp)
	}
	scale := math.Pow(10, float64(exp))

	ticks = make([]figure.Tick, n)
	for i := range ticks {
		v := a
		if n > 1 {
			v = a + (b-a)*float64(i)/float64(n-1)
		}
		label := fmt.Sprintf("%.4f", v)
		if scientific {
			label = fmt.Sprintf("%.2f", v/scale)
		}
		ticks[i] = figure.Tick{Value: v, Label: label}
	}
	return ticks, offset
}

func attachColorbar(s figure.Surface, r Range, p palette.Palette, n int, scientific bool) {
	ticks, offset := ColorbarTicks(r.Min, r.Max, n, scientific)
	s.SetColorbar(figure.Colorbar{
		Min:     r.Min,
		Max:     r.Max,
		Palette: p,
		Ticks:   ticks,
		Offset:  offset,
	})
}
