package figure

import "github.com/san-kum/ternary/internal/simplex"

// Kind identifies a recorded primitive.
type Kind int

const (
	KindLine Kind = iota
	KindPolyline
	KindFill
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindFill:
		return "fill"
	}
	return "unknown"
}

// Element is one recorded primitive.
type Element struct {
	Kind   Kind
	Points []simplex.XY
	Style  Style
}

// Figure records primitives in the order they are issued.
type Figure struct {
	Limits    simplex.Bounds
	HasLimits bool
	Elements  []Element
	Colorbar  *Colorbar
}

// New returns an empty figure.
func New() *Figure {
	return &Figure{}
}

// Ensure returns s, or a fresh Figure when s is nil.
func Ensure(s Surface) Surface {
	if s == nil {
		return New()
	}
	return s
}

func (f *Figure) SetLimits(b simplex.Bounds) {
	f.Limits = b
	f.HasLimits = true
}

func (f *Figure) Line(seg simplex.Segment, st Style) {
	f.Elements = append(f.Elements, Element{
		Kind:   KindLine,
		Points: []simplex.XY{seg.From, seg.To},
		Style:  st,
	})
}

func (f *Figure) Polyline(pts []simplex.XY, st Style) {
	f.Elements = append(f.Elements, Element{
		Kind:   KindPolyline,
		Points: append([]simplex.XY(nil), pts...),
		Style:  st,
	})
}

func (f *Figure) Fill(pts []simplex.XY, st Style) {
	f.Elements = append(f.Elements, Element{
		Kind:   KindFill,
		Points: append([]simplex.XY(nil), pts...),
		Style:  st,
	})
}

func (f *Figure) SetColorbar(cb Colorbar) {
	f.Colorbar = &cb
}

// Count returns the number of recorded elements of kind k.
func (f *Figure) Count(k Kind) int {
	n := 0
	for _, e := range f.Elements {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Bounds returns the recorded limits, or the bounding box of all elements
// when no limits were set.
func (f *Figure) Bounds() simplex.Bounds {
	if f.HasLimits {
		return f.Limits
	}
	var b simplex.Bounds
	first := true
	for _, e := range f.Elements {
		for _, p := range e.Points {
			if first {
				b = simplex.Bounds{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y}
				first = false
				continue
			}
			b.XMin = min(b.XMin, p.X)
			b.XMax = max(b.XMax, p.X)
			b.YMin = min(b.YMin, p.Y)
			b.YMax = max(b.YMax, p.Y)
		}
	}
	if b.XMax == b.XMin {
		b.XMax = b.XMin + 1
	}
	if b.YMax == b.YMin {
		b.YMax = b.YMin + 1
	}
	return b
}
