// Package simplex provides the coordinate math for ternary diagrams.
//
// Points on the 2-simplex are triples that sum to a fixed total. The
// package maps them onto an equilateral triangle in the plane:
//
//   - [ProjectPoint] and [Project]: barycentric to Cartesian
//   - [SimplexPoints]: lazy enumeration of integer lattice points
//   - [TriangleCoordinates], [AltTriangleCoordinates], [HexagonCoordinates]:
//     cell geometry for heatmap tessellations
//
// # Example
//
//	for t := range simplex.SimplexPoints(10, true) {
//		xy := simplex.ProjectPoint(simplex.Normalize(t))
//		_ = xy
//	}
package simplex
