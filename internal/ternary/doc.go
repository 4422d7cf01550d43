// Package ternary draws ternary diagrams onto a [figure.Surface].
//
//   - [Boundary], [Gridlines]: the triangle and its interior lattice lines
//   - [Plot], [PlotMultiple]: trajectories of simplex points
//   - [Heatmap], [HeatmapFunc]: colored triangular or hexagonal cells
//
// Every function accepts a nil surface and creates a [figure.Figure] in
// that case; the surface drawn on is always returned.
//
// # Example
//
//	s, err := ternary.HeatmapFunc(nil, entropy, 30, true, ternary.HeatmapOptions{})
//	if err != nil {
//		return err
//	}
//	ternary.Boundary(s, 30, figure.Style{LineWidth: 2})
package ternary
