package ternary

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
)

// Values maps lattice cells to scalars. Coverage may be partial.
type Values map[simplex.Key]float64

// Range is the value interval spanned by the color scale.
type Range struct {
	Min, Max float64
}

// ValueRange returns the min and max over the finite values. NaN and
// infinite values are skipped; a map with no finite value is empty.
func ValueRange(d Values) (Range, error) {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	finite := 0
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		finite++
	}
	if finite == 0 {
		return Range{}, ErrEmptyValues
	}
	return r, nil
}

// Style selects the tessellation.
type Style int

const (
	Triangular Style = iota
	Hexagonal
)

func (s Style) String() string {
	if s == Hexagonal {
		return "hexagonal"
	}
	return "triangular"
}

// ParseStyle matches names case-insensitively by prefix: "tri…" or
// "hex…". The empty name is triangular.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case n == "", strings.HasPrefix(n, "tri"):
		return Triangular, nil
	case strings.HasPrefix(n, "hex"):
		return Hexagonal, nil
	}
	return 0, fmt.Errorf("%w: %q (want triangular or hexagonal)", ErrUnknownStyle, name)
}

// HeatmapOptions configures Heatmap. The zero value renders a triangular
// heatmap in the default palette with a seven-tick colorbar.
type HeatmapOptions struct {
	// Style is the tessellation name, see ParseStyle.
	Style string
	// Palette defaults to palette.DefaultName.
	Palette palette.Palette
	// Range overrides the color scale bounds.
	Range *Range
	// Ticks and Scientific configure the colorbar labels.
	Ticks      int
	Scientific bool
	NoColorbar bool
	// HexVertices overrides the hexagon geometry.
	HexVertices simplex.HexVertexFunc
}

// Cell is one colored polygon of a tessellation.
type Cell struct {
	Key      simplex.Key
	Alt      bool
	Value    float64
	Vertices []simplex.XY
}

// Cells tessellates d. Keys are visited in (I, J) order. Triangular
// tessellations list all upright cells first, then every alt cell whose
// three neighbors have values. Keys off the lattice (negative indices
// or I+J > steps) and hexagonal cells without geometry are skipped.
func Cells(d Values, steps int, style Style, hexFn simplex.HexVertexFunc) []Cell {
	keys := slices.DeleteFunc(sortedKeys(d), func(k simplex.Key) bool {
		return !onLattice(k, steps)
	})
	cells := make([]Cell, 0, 2*len(keys))

	if style == Hexagonal {
		if hexFn == nil {
			hexFn = simplex.HexagonCoordinates
		}
		for _, k := range keys {
			v, ok := hexFn(k.I, k.J, steps)
			if !ok {
				continue
			}
			cells = append(cells, Cell{Key: k, Value: d[k], Vertices: v})
		}
		return cells
	}

	for _, k := range keys {
		cells = append(cells, Cell{Key: k, Value: d[k], Vertices: simplex.TriangleCoordinates(k.I, k.J)})
	}
	for _, k := range keys {
		v, ok := altValue(d, k, steps)
		if !ok {
			continue
		}
		cells = append(cells, Cell{Key: k, Alt: true, Value: v, Vertices: simplex.AltTriangleCoordinates(k.I, k.J)})
	}
	return cells
}

func onLattice(k simplex.Key, steps int) bool {
	return k.I >= 0 && k.J >= 0 && k.I+k.J <= steps
}

func altValue(d Values, k simplex.Key, steps int) (float64, bool) {
	sum := 0.0
	for _, n := range simplex.AltNeighbors(k) {
		v, ok := d[n]
		if !ok || !onLattice(n, steps) {
			return 0, false
		}
		sum += v
	}
	return sum / 3, true
}

func sortedKeys(d Values) []simplex.Key {
	keys := make([]simplex.Key, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return keys[a].I < keys[b].I
		}
		return keys[a].J < keys[b].J
	})
	return keys
}

// Heatmap fills one polygon per cell of d, colored by value, and attaches
// a colorbar. Keys off the lattice are not drawn. NaN values are filled
// with palette.BadColor.
func Heatmap(s figure.Surface, d Values, steps int, opts HeatmapOptions) (figure.Surface, error) {
	if len(d) == 0 {
		return s, ErrEmptyValues
	}
	if steps < 1 {
		return s, ErrInvalidSteps
	}
	style, err := ParseStyle(opts.Style)
	if err != nil {
		return s, err
	}
	p := opts.Palette
	if p == nil {
		if p, err = palette.Lookup(palette.DefaultName); err != nil {
			return s, err
		}
	}
	var r Range
	if opts.Range != nil {
		r = *opts.Range
	} else if r, err = ValueRange(d); err != nil {
		return s, err
	}

	s = figure.Ensure(s)
	for _, c := range Cells(d, steps, style, opts.HexVertices) {
		col := palette.ColorMapper(c.Value, r.Min, r.Max, p)
		s.Fill(c.Vertices, figure.Style{FillColor: col, EdgeColor: col, Alpha: 1})
	}

	if !opts.NoColorbar {
		ticks := opts.Ticks
		if ticks <= 0 {
			ticks = figure.DefaultTicks
		}
		attachColorbar(s, r, p, ticks, opts.Scientific)
	}
	return s, nil
}

// ScalarFunc is evaluated on normalized simplex points.
type ScalarFunc func(p simplex.Point) float64

// Sample evaluates f on every lattice point at the given resolution.
func Sample(f ScalarFunc, steps int, boundary bool) Values {
	d := make(Values, simplex.LatticeSize(steps, boundary))
	for t := range simplex.SimplexPoints(steps, boundary) {
		d[simplex.Key{I: t[0], J: t[1]}] = f(simplex.Normalize(t))
	}
	return d
}

// HeatmapFunc samples f on the lattice and renders the result with Heatmap.
func HeatmapFunc(s figure.Surface, f ScalarFunc, steps int, boundary bool, opts HeatmapOptions) (figure.Surface, error) {
	return Heatmap(s, Sample(f, steps, boundary), steps, opts)
}
