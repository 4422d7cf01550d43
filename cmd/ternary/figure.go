package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/ternary/internal/config"
	"github.com/san-kum/ternary/internal/export"
	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
)

// baseConfig layers the preset and then the config file over the defaults.
func baseConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg; CLI flags override config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("steps") {
		cfg.Steps = steps
	}
	if f.Changed("style") {
		cfg.Style = style
	}
	if f.Changed("palette") {
		cfg.Palette = paletteArg
	}
	if f.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if f.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if f.Changed("scientific") {
		cfg.Scientific = scientific
	}
	if f.Changed("gridlines") {
		cfg.Gridlines.Enabled = gridlines
	}
	if f.Changed("no-colorbar") {
		cfg.Colorbar = !noColorbar
	}
	if f.Changed("renderer") {
		cfg.Output.Renderer = renderer
	}
	if f.Changed("format") {
		cfg.Output.Format = format
	}
	if f.Changed("width") {
		cfg.Output.Width = width
	}
	if f.Changed("height") {
		cfg.Output.Height = height
	}
	if f.Changed("game") {
		cfg.Game = game
	}
	if f.Changed("dt") {
		cfg.Trajectory.Dt = dt
	}
	if f.Changed("iterations") {
		cfg.Trajectory.Steps = iterations
	}
	if f.Changed("integrator") {
		cfg.Trajectory.Integrator = integrator
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := baseConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// colorRange resolves the color scale. --min and --max override one end
// each; the other end comes from the config or the data.
func colorRange(cmd *cobra.Command, cfg *config.Config, values ternary.Values) (*ternary.Range, error) {
	r := cfg.HeatmapRange()
	minSet, maxSet := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
	if !minSet && !maxSet {
		return r, nil
	}
	if r == nil {
		auto, err := ternary.ValueRange(values)
		if err != nil {
			return nil, err
		}
		r = &auto
	}
	if minSet {
		r.Min = vmin
	}
	if maxSet {
		r.Max = vmax
	}
	if r.Max < r.Min {
		return nil, fmt.Errorf("color range max %g below min %g", r.Max, r.Min)
	}
	cfg.Range = &config.RangeConfig{Min: r.Min, Max: r.Max}
	return r, nil
}

func heatmapOptions(cfg *config.Config, r *ternary.Range) (ternary.HeatmapOptions, error) {
	p, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return ternary.HeatmapOptions{}, err
	}
	return ternary.HeatmapOptions{
		Style:      cfg.Style,
		Palette:    p,
		Range:      r,
		Ticks:      cfg.Ticks,
		Scientific: cfg.Scientific,
		NoColorbar: !cfg.Colorbar,
	}, nil
}

// buildHeatmap draws values with the configured gridlines and border on
// a lattice-scaled figure.
func buildHeatmap(cfg *config.Config, values ternary.Values, r *ternary.Range) (*figure.Figure, error) {
	opts, err := heatmapOptions(cfg, r)
	if err != nil {
		return nil, err
	}
	fig := figure.New()
	ternary.Resize(fig, float64(cfg.Steps))
	if _, err := ternary.Heatmap(fig, values, cfg.Steps, opts); err != nil {
		return nil, err
	}
	decorate(fig, cfg)
	return fig, nil
}

func decorate(fig *figure.Figure, cfg *config.Config) {
	if cfg.Gridlines.Enabled {
		ternary.Gridlines(fig, cfg.Steps, cfg.Gridlines.Style)
	}
	if cfg.Border.Enabled {
		ternary.Boundary(fig, float64(cfg.Steps), cfg.Border.Style)
	}
}

// outputFormat picks the file format: an explicit --format wins, then the
// output extension, then the config.
func outputFormat(cmd *cobra.Command, cfg *config.Config, path string) string {
	if cmd.Flags().Changed("format") {
		return cfg.Output.Format
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if slices.Contains(export.Formats(), ext) {
		return ext
	}
	return cfg.Output.Format
}

// writeFigure renders fig to --output, or to base plus the format's
// extension, and returns the path written.
func writeFigure(cmd *cobra.Command, cfg *config.Config, fig *figure.Figure, base string) (path string, err error) {
	path = output
	if path == "" {
		ext := cfg.Output.Format
		if cfg.Output.Renderer == "svg" {
			ext = "svg"
		}
		path = base + "." + ext
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch cfg.Output.Renderer {
	case "svg":
		opts := export.DefaultSVGOptions()
		opts.Width, opts.Height = cfg.Output.Width, cfg.Output.Height
		err = export.WriteSVG(f, fig, opts)
	default:
		opts := export.DefaultPlotOptions()
		opts.Width = vg.Points(float64(cfg.Output.Width))
		opts.Height = vg.Points(float64(cfg.Output.Height))
		opts.Format = outputFormat(cmd, cfg, path)
		err = export.WritePlot(f, fig, opts)
	}
	return path, err
}

// inferSteps returns the largest i+j in values, the smallest resolution
// that contains every key.
func inferSteps(values ternary.Values) int {
	n := 1
	for k := range values {
		n = max(n, k.I+k.J)
	}
	return n
}

func scalePoints(traj []simplex.Point, s float64) []simplex.Point {
	out := make([]simplex.Point, len(traj))
	for i, p := range traj {
		out[i] = simplex.Point{p[0] * s, p[1] * s, p[2] * s}
	}
	return out
}
