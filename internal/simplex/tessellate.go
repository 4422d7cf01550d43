package simplex

// TriangleCoordinates returns the upright cell for lattice index (i, j):
// base on the lower side, apex above.
func TriangleCoordinates(i, j int) []XY {
	fi, fj := float64(i), float64(j)
	return []XY{
		{fi/2 + fj, fi * Sqrt3Over2},
		{fi/2 + fj + 1, fi * Sqrt3Over2},
		{fi/2 + fj + 0.5, (fi + 1) * Sqrt3Over2},
	}
}

// AltTriangleCoordinates returns the inverted cell that fills the gap
// between the upright cells at (i, j), (i, j+1) and (i+1, j).
func AltTriangleCoordinates(i, j int) []XY {
	fi, fj := float64(i), float64(j)
	return []XY{
		{fi/2 + fj + 1, fi * Sqrt3Over2},
		{fi/2 + fj + 1.5, (fi + 1) * Sqrt3Over2},
		{fi/2 + fj + 0.5, (fi + 1) * Sqrt3Over2},
	}
}

// AltNeighbors lists the three cells whose values average into the alt
// triangle at k.
func AltNeighbors(k Key) [3]Key {
	return [3]Key{k, {k.I, k.J + 1}, {k.I + 1, k.J}}
}

// HexVertexFunc returns the polygon for a lattice cell, or false when the
// cell has no shape.
type HexVertexFunc func(i, j, steps int) ([]XY, bool)

const sqrt3 = 1.7320508075688772

var (
	hexAlpha   = XY{0, 1 / sqrt3}
	hexUp      = XY{0.5, 1 / (2 * sqrt3)}
	hexDown    = XY{0.5, -1 / (2 * sqrt3)}
	hexI       = XY{0.5, sqrt3 / 2}
	hexIDown   = XY{0.5, -sqrt3 / 2}
	hexDeltaX  = XY{0.5, 0}
	hexIHalf   = hexI.scale(0.5)
	hexIDnHalf = hexIDown.scale(0.5)
)

func (p XY) add(q XY) XY { return XY{p.X + q.X, p.Y + q.Y} }

func (p XY) sub(q XY) XY { return XY{p.X - q.X, p.Y - q.Y} }

func (p XY) scale(f float64) XY { return XY{p.X * f, p.Y * f} }

// HexagonCoordinates returns the hexagonal cell centered on lattice point
// (i, j, steps-i-j). Corner cells are clipped to quadrilaterals and edge
// cells to pentagons so the tessellation stays inside the triangle.
func HexagonCoordinates(i, j, steps int) ([]XY, bool) {
	k := steps - i - j
	if i < 0 || j < 0 || k < 0 {
		return nil, false
	}
	c := XY{float64(i)/2 + float64(j), Sqrt3Over2 * float64(i)}

	switch {
	case i == steps:
		return []XY{c, c.add(hexIDnHalf), c.sub(hexAlpha), c.sub(hexIHalf)}, true
	case k == steps:
		return []XY{c, c.add(hexIHalf), c.add(hexUp), c.add(hexDeltaX)}, true
	case j == steps:
		return []XY{c, c.sub(hexDeltaX), c.sub(hexDown), c.sub(hexIDnHalf)}, true
	case i == 0:
		return []XY{c.sub(hexDeltaX), c.sub(hexDown), c.add(hexAlpha), c.add(hexUp), c.add(hexDeltaX)}, true
	case j == 0:
		return []XY{c.add(hexIHalf), c.add(hexUp), c.add(hexDown), c.sub(hexAlpha), c.sub(hexIHalf)}, true
	case k == 0:
		return []XY{c.add(hexIDnHalf), c.sub(hexAlpha), c.sub(hexUp), c.sub(hexDown), c.sub(hexIDnHalf)}, true
	}
	return []XY{
		c.add(hexAlpha), c.add(hexUp), c.add(hexDown),
		c.sub(hexAlpha), c.sub(hexUp), c.sub(hexDown),
	}, true
}
