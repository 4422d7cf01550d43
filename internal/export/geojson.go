package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
)

func ring(pts []simplex.XY) orb.Ring {
	r := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if len(pts) > 0 {
		r = append(r, r[0])
	}
	return r
}

// CellsGeoJSON encodes tessellation cells as polygon features in projected
// coordinates. Each feature carries its lattice index, value and the
// color it would be filled with.
func CellsGeoJSON(cells []ternary.Cell, steps int, r ternary.Range, p palette.Palette) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, c := range cells {
		f := geojson.NewFeature(orb.Polygon{ring(c.Vertices)})
		f.Properties["i"] = c.Key.I
		f.Properties["j"] = c.Key.J
		f.Properties["k"] = c.Key.K(steps)
		f.Properties["alt"] = c.Alt
		f.Properties["value"] = c.Value
		f.Properties["fill"] = palette.ColorMapper(c.Value, r.Min, r.Max, p)
		fc.Append(f)
	}
	return fc.MarshalJSON()
}

// TrajectoriesGeoJSON encodes projected trajectories as line features.
func TrajectoriesGeoJSON(trajectories [][]simplex.Point) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for n, t := range trajectories {
		ls := make(orb.LineString, len(t))
		for i, xy := range simplex.ProjectAll(t) {
			ls[i] = orb.Point{xy.X, xy.Y}
		}
		f := geojson.NewFeature(ls)
		f.Properties["trajectory"] = n
		if len(t) > 0 {
			f.Properties["start"] = t[0][:]
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
