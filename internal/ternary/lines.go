package ternary

import (
	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/simplex"
)

// Resize sets the surface window so a triangle of the given scale fits.
func Resize(s figure.Surface, scale float64) {
	s.SetLimits(simplex.CanvasBounds(scale))
}

// Boundary draws the three edges of the simplex.
func Boundary(s figure.Surface, scale float64, st figure.Style) figure.Surface {
	s = figure.Ensure(s)
	Resize(s, scale)
	st = st.WithDefaults()
	for _, seg := range simplex.BoundarySegments(scale) {
		s.Line(seg, st)
	}
	return s
}

// Gridlines draws the interior lattice lines for the given resolution,
// excluding the boundary.
func Gridlines(s figure.Surface, steps int, st figure.Style) figure.Surface {
	s = figure.Ensure(s)
	Resize(s, float64(steps))
	st = st.WithDefaults()
	for _, seg := range simplex.GridSegments(steps) {
		s.Line(seg, st)
	}
	return s
}

// Plot draws the trajectory as one connected line, in input order.
func Plot(s figure.Surface, points []simplex.Point, st figure.Style) figure.Surface {
	s = figure.Ensure(s)
	if len(points) == 0 {
		return s
	}
	s.Polyline(simplex.ProjectAll(points), st.WithDefaults())
	return s
}

// PlotMultiple draws each trajectory and then the boundary at scale.
func PlotMultiple(s figure.Surface, trajectories [][]simplex.Point, scale float64, st figure.Style) figure.Surface {
	s = figure.Ensure(s)
	if st.LineWidth <= 0 {
		st.LineWidth = 2
	}
	for _, t := range trajectories {
		Plot(s, t, st)
	}
	return Boundary(s, scale, figure.Style{})
}
