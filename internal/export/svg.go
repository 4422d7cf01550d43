package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
)

type SVGOptions struct {
	Width, Height int
	Background    string
	// ColorbarWidth is the horizontal space reserved for the legend.
	ColorbarWidth int
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:         600,
		Height:        500,
		Background:    "#ffffff",
		ColorbarWidth: 90,
	}
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// viewport maps figure coordinates to pixels, y flipped, aspect kept.
type viewport struct {
	b             simplex.Bounds
	scale         float64
	offX, offY    float64
	width, height int
}

func newViewport(b simplex.Bounds, width, height int) viewport {
	sx := float64(width) / (b.XMax - b.XMin)
	sy := float64(height) / (b.YMax - b.YMin)
	s := math.Min(sx, sy)
	return viewport{
		b:      b,
		scale:  s,
		offX:   (float64(width) - s*(b.XMax-b.XMin)) / 2,
		offY:   (float64(height) - s*(b.YMax-b.YMin)) / 2,
		width:  width,
		height: height,
	}
}

func (v viewport) px(p simplex.XY) (int, int) {
	x := v.offX + (p.X-v.b.XMin)*v.scale
	y := float64(v.height) - v.offY - (p.Y-v.b.YMin)*v.scale
	return int(math.Round(x)), int(math.Round(y))
}

func (v viewport) pxs(pts []simplex.XY) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = v.px(p)
	}
	return xs, ys
}

// WriteSVG renders fig as a standalone SVG document.
func WriteSVG(w io.Writer, fig *figure.Figure, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("export: invalid svg size %dx%d", opts.Width, opts.Height)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	if opts.Background != "" {
		canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+opts.Background)
	}

	plotWidth := opts.Width
	if fig.Colorbar != nil {
		plotWidth -= opts.ColorbarWidth
	}
	vp := newViewport(fig.Bounds(), plotWidth, opts.Height)

	for _, e := range fig.Elements {
		xs, ys := vp.pxs(e.Points)
		switch e.Kind {
		case figure.KindFill:
			canvas.Polygon(xs, ys, fillCSS(e.Style))
		case figure.KindLine:
			canvas.Line(xs[0], ys[0], xs[1], ys[1], strokeCSS(e.Style))
		case figure.KindPolyline:
			canvas.Polyline(xs, ys, "fill:none;"+strokeCSS(e.Style))
		}
	}

	if fig.Colorbar != nil {
		drawSVGColorbar(canvas, fig.Colorbar, plotWidth, opts)
	}
	canvas.End()
	return ew.err
}

func fillCSS(st figure.Style) string {
	fill := st.FillColor
	if fill == "" {
		fill = "#000000"
	}
	edge := st.EdgeColor
	if edge == "" {
		edge = fill
	}
	alpha := st.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:0.5;fill-opacity:%.3g;stroke-opacity:%.3g", fill, edge, alpha, alpha)
}

func strokeCSS(st figure.Style) string {
	st = st.WithDefaults()
	return fmt.Sprintf("stroke:%s;stroke-width:%.3g;stroke-opacity:%.3g", st.LineColor, st.LineWidth, st.Alpha)
}

func drawSVGColorbar(canvas *svg.SVG, cb *figure.Colorbar, left int, opts SVGOptions) {
	const (
		barWidth = 18
		margin   = 40
		bands    = 128
	)
	x := left + 10
	top, bottom := margin, opts.Height-margin
	height := bottom - top

	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1)
		y0 := bottom - (i+1)*height/bands
		y1 := bottom - i*height/bands
		col := palette.Hex(cb.Palette.At(t))
		canvas.Rect(x, y0, barWidth, y1-y0+1, "fill:"+col)
	}
	canvas.Rect(x, top, barWidth, height, "fill:none;stroke:#000000;stroke-width:1")

	for _, tk := range cb.Ticks {
		frac := 0.5
		if cb.Max != cb.Min {
			frac = (tk.Value - cb.Min) / (cb.Max - cb.Min)
		}
		y := bottom - int(math.Round(frac*float64(height)))
		canvas.Line(x+barWidth, y, x+barWidth+4, y, "stroke:#000000;stroke-width:1")
		canvas.Text(x+barWidth+6, y+4, tk.Label, "font-family:sans-serif;font-size:10px;fill:#000000")
	}
	if cb.Offset != "" {
		canvas.Text(x, top-8, "×"+cb.Offset, "font-family:sans-serif;font-size:10px;fill:#000000")
	}
}
