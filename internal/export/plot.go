package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
)

type PlotOptions struct {
	Width, Height vg.Length
	// Format is png, svg or pdf.
	Format string
	Title  string
	// ColorbarWidth is the horizontal space reserved for the legend.
	ColorbarWidth vg.Length
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:         6 * vg.Inch,
		Height:        5 * vg.Inch,
		Format:        "png",
		ColorbarWidth: 1.2 * vg.Inch,
	}
}

// Formats lists the output formats WritePlot accepts.
func Formats() []string {
	return []string{"png", "svg", "pdf"}
}

func newCanvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png", "":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("export: unknown format %q (want %s)", format, strings.Join(Formats(), ", "))
}

// NewPlot converts a recorded figure into a gonum plot with hidden axes
// and the figure's limits.
func NewPlot(fig *figure.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	b := fig.Bounds()
	p.X.Min, p.X.Max = b.XMin, b.XMax
	p.Y.Min, p.Y.Max = b.YMin, b.YMax

	for i, e := range fig.Elements {
		xys := toXYs(e.Points)
		switch e.Kind {
		case figure.KindFill:
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, fmt.Errorf("export: element %d: %w", i, err)
			}
			fill, edge, err := fillColors(e.Style)
			if err != nil {
				return nil, fmt.Errorf("export: element %d: %w", i, err)
			}
			poly.Color = fill
			poly.LineStyle.Color = edge
			poly.LineStyle.Width = vg.Points(0.3)
			p.Add(poly)
		case figure.KindLine, figure.KindPolyline:
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("export: element %d: %w", i, err)
			}
			st := e.Style.WithDefaults()
			c, err := palette.ParseHex(st.LineColor)
			if err != nil {
				return nil, fmt.Errorf("export: element %d: %w", i, err)
			}
			line.LineStyle.Color = palette.WithAlpha(c, st.Alpha)
			line.LineStyle.Width = vg.Points(st.LineWidth)
			p.Add(line)
		}
	}
	return p, nil
}

func toXYs(pts []simplex.XY) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

func fillColors(st figure.Style) (fill, edge color.Color, err error) {
	alpha := st.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	fc := st.FillColor
	if fc == "" {
		fc = "#000000"
	}
	f, err := palette.ParseHex(fc)
	if err != nil {
		return nil, nil, err
	}
	ec := st.EdgeColor
	if ec == "" {
		ec = fc
	}
	e, err := palette.ParseHex(ec)
	if err != nil {
		return nil, nil, err
	}
	return palette.WithAlpha(f, alpha), palette.WithAlpha(e, alpha), nil
}

// NewColorbarPlot builds a vertical colorbar with the figure's ticks.
func NewColorbarPlot(cb *figure.Colorbar) *plot.Plot {
	lo, hi := cb.Min, cb.Max
	if lo == hi {
		// plotter.ColorBar panics on an empty range.
		lo, hi = lo-0.5, hi+0.5
	}
	p := plot.New()
	p.Add(&plotter.ColorBar{
		ColorMap: palette.NewColorMap(cb.Palette, lo, hi),
		Vertical: true,
		Colors:   256,
	})
	p.HideX()
	p.Y.Tick.Marker = fixedTicks(cb.Ticks)
	if cb.Offset != "" {
		p.Y.Label.Text = "×" + cb.Offset
	}
	return p
}

type fixedTicks []figure.Tick

func (t fixedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, len(t))
	for i, tk := range t {
		ticks[i] = plot.Tick{Value: tk.Value, Label: tk.Label}
	}
	return ticks
}

// WritePlot renders fig through gonum/plot in the requested format.
func WritePlot(w io.Writer, fig *figure.Figure, opts PlotOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("export: invalid plot size %vx%v", opts.Width, opts.Height)
	}
	p, err := NewPlot(fig)
	if err != nil {
		return err
	}
	p.Title.Text = opts.Title

	c, err := newCanvas(opts.Format, opts.Width, opts.Height)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	if fig.Colorbar == nil {
		p.Draw(fitAspect(dc, fig.Bounds()))
	} else {
		width := dc.Max.X - dc.Min.X
		mainArea := draw.Crop(dc, 0, -opts.ColorbarWidth, 0, 0)
		barArea := draw.Crop(dc, width-opts.ColorbarWidth, 0, vg.Inch/4, -vg.Inch/4)
		p.Draw(fitAspect(mainArea, fig.Bounds()))
		NewColorbarPlot(fig.Colorbar).Draw(draw.Crop(barArea, 0, -opts.ColorbarWidth/2, 0, 0))
	}

	_, err = c.WriteTo(w)
	return err
}

// fitAspect shrinks dc so one data unit has the same length on both axes.
func fitAspect(dc draw.Canvas, b simplex.Bounds) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	dataAspect := (b.YMax - b.YMin) / (b.XMax - b.XMin)
	if want := vg.Length(float64(w) * dataAspect); want < h {
		pad := (h - want) / 2
		return draw.Crop(dc, 0, 0, pad, -pad)
	}
	want := vg.Length(float64(h) / dataAspect)
	pad := (w - want) / 2
	return draw.Crop(dc, pad, -pad, 0, 0)
}
