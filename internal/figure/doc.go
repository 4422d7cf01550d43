// Package figure defines the drawing surface ternary diagrams are issued
// against.
//
// [Surface] is the small set of primitives the diagram code needs: a view
// window, line segments, polylines, filled polygons and one colorbar.
// [Figure] is the default implementation. It records every primitive in
// order so a back end (SVG, gonum/plot, terminal) can rasterize it later.
package figure
