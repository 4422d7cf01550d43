package simplex

// Segment is a straight line between two projected points.
type Segment struct {
	From, To XY
}

// HorizontalLine is the line at level i parallel to the bottom edge.
func HorizontalLine(steps, i float64) Segment {
	return Segment{
		From: ProjectPoint(Point{0, steps - i, i}),
		To:   ProjectPoint(Point{steps - i, 0, i}),
	}
}

// LeftParallelLine is the line at level i parallel to the left edge.
func LeftParallelLine(steps, i float64) Segment {
	return Segment{
		From: ProjectPoint(Point{0, i, steps - i}),
		To:   ProjectPoint(Point{steps - i, i, 0}),
	}
}

// RightParallelLine is the line at level i parallel to the right edge.
func RightParallelLine(steps, i float64) Segment {
	return Segment{
		From: ProjectPoint(Point{i, steps - i, 0}),
		To:   ProjectPoint(Point{i, 0, steps - i}),
	}
}

// BoundarySegments returns the three edges of the triangle at the given scale.
func BoundarySegments(scale float64) []Segment {
	return []Segment{
		HorizontalLine(scale, 0),
		LeftParallelLine(scale, 0),
		RightParallelLine(scale, 0),
	}
}

// GridSegments returns the interior gridlines for a lattice of the given
// resolution. The boundary itself is not included.
func GridSegments(steps int) []Segment {
	if steps < 1 {
		return nil
	}
	s := float64(steps)
	segs := make([]Segment, 0, 3*steps)
	for i := 1; i < steps; i++ {
		segs = append(segs, HorizontalLine(s, float64(i)))
	}
	for i := 1; i <= steps; i++ {
		segs = append(segs, LeftParallelLine(s, float64(i)), RightParallelLine(s, float64(i)))
	}
	return segs
}

// Bounds is the plot window that fits a projected triangle of the given
// scale with a small margin.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// CanvasBounds returns the window used before drawing boundary or gridlines.
func CanvasBounds(scale float64) Bounds {
	return Bounds{
		XMin: -0.05 * scale,
		XMax: 1.05 * scale,
		YMin: -0.05 * scale,
		YMax: 0.90 * scale,
	}
}
