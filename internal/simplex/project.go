package simplex

// Sqrt3Over2 is the height of an equilateral triangle with unit side.
const Sqrt3Over2 = 0.8660254037844386

// Point is a simplex point (a, b, c). All points of one diagram share the
// same component sum.
type Point [3]float64

// Triple is an integer lattice point (i1, i2, i3).
type Triple [3]int

// Key indexes a lattice cell. The third coordinate is implicit:
// K = steps - I - J.
type Key struct {
	I, J int
}

// K returns the implicit third coordinate at the given resolution.
func (k Key) K(steps int) int {
	return steps - k.I - k.J
}

// XY is a projected point in the plane.
type XY struct {
	X, Y float64
}

// ProjectPoint maps (a, b, c) onto the plane. The triangle has corners
// (0,0), (N,0) and (N/2, N*sqrt(3)/2) where N is the component sum.
func ProjectPoint(p Point) XY {
	b, c := p[1], p[2]
	return XY{
		X: b + c/2,
		Y: Sqrt3Over2 * c,
	}
}

// Project maps a sequence of points and returns the coordinates unzipped,
// in input order.
func Project(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xy := ProjectPoint(p)
		xs[i] = xy.X
		ys[i] = xy.Y
	}
	return xs, ys
}

// ProjectAll maps a sequence of points to planar points.
func ProjectAll(points []Point) []XY {
	out := make([]XY, len(points))
	for i, p := range points {
		out[i] = ProjectPoint(p)
	}
	return out
}

// Normalize scales a lattice point so that its components sum to 1.
// The zero triple maps to the zero point.
func Normalize(t Triple) Point {
	s := float64(t[0] + t[1] + t[2])
	if s == 0 {
		return Point{}
	}
	return Point{float64(t[0]) / s, float64(t[1]) / s, float64(t[2]) / s}
}

// Sum returns the component sum of p.
func (p Point) Sum() float64 {
	return p[0] + p[1] + p[2]
}

// Unzip splits planar points into parallel coordinate slices.
func Unzip(pts []XY) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
