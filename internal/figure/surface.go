package figure

import (
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
)

// Tick is one labelled colorbar position.
type Tick struct {
	Value float64
	Label string
}

// Colorbar describes the legend for a heatmap's color scale.
type Colorbar struct {
	Min, Max float64
	Palette  palette.Palette
	Ticks    []Tick
	// Offset is the shared power-of-ten label for scientific ticks.
	Offset string
}

// Surface receives drawing primitives. Implementations are not safe for
// concurrent use.
type Surface interface {
	SetLimits(b simplex.Bounds)
	Line(seg simplex.Segment, st Style)
	Polyline(pts []simplex.XY, st Style)
	Fill(pts []simplex.XY, st Style)
	SetColorbar(cb Colorbar)
}
