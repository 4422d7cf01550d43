package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ternary/internal/config"
	"github.com/san-kum/ternary/internal/dynamics"
	"github.com/san-kum/ternary/internal/export"
	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/storage"
	"github.com/san-kum/ternary/internal/ternary"
	"github.com/san-kum/ternary/internal/viz"
)

func sampleFunction(cfg *config.Config) (ternary.Values, error) {
	fn, err := dynamics.NewRegistry().Function(cfg.Function, cfg.Game)
	if err != nil {
		return nil, err
	}
	values := ternary.Sample(fn, cfg.Steps, cfg.Boundary)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: steps=%d has no interior points", ternary.ErrEmptyValues, cfg.Steps)
	}
	return values, nil
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Function = args[0]
	}
	values, err := sampleFunction(cfg)
	if err != nil {
		return err
	}
	return renderValues(cmd, cfg, values, "heatmap", cfg.Function)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	values, err := storage.ReadValuesCSV(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	if !cmd.Flags().Changed("steps") && configFile == "" && preset == "" {
		cfg.Steps = inferSteps(values)
	}
	cfg.Function = ""
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	return renderValues(cmd, cfg, values, "render", base)
}

func renderValues(cmd *cobra.Command, cfg *config.Config, values ternary.Values, kind, base string) error {
	r, err := colorRange(cmd, cfg, values)
	if err != nil {
		return err
	}
	start := time.Now()
	fig, err := buildHeatmap(cfg, values, r)
	if err != nil {
		return err
	}
	path, err := writeFigure(cmd, cfg, fig, base)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", viz.Success.Render("wrote"), path,
		viz.Subtle.Render(fmt.Sprintf("(steps=%d, style=%s, cells=%d, %v)",
			cfg.Steps, cfg.Style, fig.Count(figure.KindFill), time.Since(start).Round(time.Millisecond))))

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(storage.RenderMetadata{
		Kind:       kind,
		Function:   cfg.Function,
		Game:       cfg.Game,
		Steps:      cfg.Steps,
		Style:      cfg.Style,
		Boundary:   cfg.Boundary,
		Palette:    cfg.Palette,
		Range:      r,
		Scientific: cfg.Scientific,
		Output:     path,
	}, values)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", id)
	return nil
}

func parseStart(s string) (simplex.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return simplex.Point{}, fmt.Errorf("start %q: want a,b,c", s)
	}
	var p simplex.Point
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return simplex.Point{}, fmt.Errorf("start %q: %w", s, err)
		}
		p[i] = v
	}
	return p, nil
}

func startPoints(cfg *config.Config) ([]simplex.Point, error) {
	if len(starts) > 0 {
		points := make([]simplex.Point, 0, len(starts))
		for _, s := range starts {
			p, err := parseStart(s)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		return points, nil
	}
	if cs := cfg.Starts(); len(cs) > 0 {
		points := make([]simplex.Point, len(cs))
		for i, c := range cs {
			points[i] = simplex.Point(c)
		}
		return points, nil
	}
	return dynamics.DefaultStarts(), nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Game = args[0]
	}
	if cfg.Game == "" {
		cfg.Game = config.DefaultGame
	}

	reg := dynamics.NewRegistry()
	sys, err := reg.Game(cfg.Game)
	if err != nil {
		return err
	}
	newIntegrator, err := reg.IntegratorFactory(cfg.Trajectory.Integrator)
	if err != nil {
		return err
	}
	points, err := startPoints(cfg)
	if err != nil {
		return err
	}

	dcfg := dynamics.DefaultConfig()
	dcfg.Dt = cfg.Trajectory.Dt
	dcfg.Steps = cfg.Trajectory.Steps

	fmt.Printf("integrating %d trajectories of %s...\n", len(points), cfg.Game)
	trajs, err := dynamics.NewEnsemble(sys, newIntegrator).Run(cmd.Context(), points, dcfg)
	if err != nil {
		return err
	}

	fig := figure.New()
	ternary.Resize(fig, float64(cfg.Steps))
	if field != "" {
		cfg.Function = field
		values, err := sampleFunction(cfg)
		if err != nil {
			return err
		}
		r, err := colorRange(cmd, cfg, values)
		if err != nil {
			return err
		}
		opts, err := heatmapOptions(cfg, r)
		if err != nil {
			return err
		}
		if _, err := ternary.Heatmap(fig, values, cfg.Steps, opts); err != nil {
			return err
		}
	}
	if err := drawTrajectories(fig, cfg, trajs); err != nil {
		return err
	}

	if series {
		printSeries(trajs)
	}
	if geoOut != "" {
		data, err := export.TrajectoriesGeoJSON(trajs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(geoOut, data, 0644); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", viz.Success.Render("wrote"), geoOut)
	}
	if terminal {
		fmt.Print(viz.Sketch(fig, 60, 26).String())
		if !cmd.Flags().Changed("output") {
			return nil
		}
	}

	path, err := writeFigure(cmd, cfg, fig, "trajectory_"+cfg.Game)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", viz.Success.Render("wrote"), path,
		viz.Subtle.Render(fmt.Sprintf("(%d trajectories, %d steps each)", len(trajs), dcfg.Steps)))
	return nil
}

// drawTrajectories scales trajectories to the lattice. A configured line
// color draws every trajectory alike; otherwise each gets a palette color.
// The border follows cfg.Border.
func drawTrajectories(fig *figure.Figure, cfg *config.Config, trajs [][]simplex.Point) error {
	scale := float64(cfg.Steps)
	scaled := make([][]simplex.Point, len(trajs))
	for i, t := range trajs {
		scaled[i] = scalePoints(t, scale)
	}
	if cfg.Gridlines.Enabled {
		ternary.Gridlines(fig, cfg.Steps, cfg.Gridlines.Style)
	}

	st := cfg.Trajectory.Style
	var p palette.Palette
	if st.LineColor == "" {
		var err error
		if p, err = palette.Lookup(cfg.Palette); err != nil {
			return err
		}
	}
	for i, t := range scaled {
		line := st
		if p != nil {
			line.LineColor = palette.ColorMapper(float64(i), 0, float64(len(scaled)-1), p)
		}
		ternary.Plot(fig, t, line)
	}
	if cfg.Border.Enabled {
		ternary.Boundary(fig, scale, cfg.Border.Style)
	}
	return nil
}

func printSeries(trajs [][]simplex.Point) {
	for i, t := range trajs {
		if len(t) < 2 {
			continue
		}
		comps := dynamics.Components(t)
		graph := asciigraph.PlotMany(comps[:],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
			asciigraph.SeriesLegends("a", "b", "c"),
			asciigraph.Caption(fmt.Sprintf("trajectory %d from (%.2f, %.2f, %.2f)", i, t[0][0], t[0][1], t[0][2])),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Function = args[0]
	}
	values, err := sampleFunction(cfg)
	if err != nil {
		return err
	}
	r, err := ternary.ValueRange(values)
	if err != nil {
		return err
	}
	if cr := cfg.HeatmapRange(); cr != nil {
		r = *cr
	}
	p, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s  steps=%d", cfg.Function, cfg.Steps)))
	fmt.Print(viz.Heatmap(values, cfg.Steps, r, p))
	fmt.Println()
	fmt.Println(viz.Legend(r, p, 40))
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg := dynamics.NewRegistry()
	funcs := reg.ListFunctions()
	for i, name := range funcs {
		if name == cfg.Function {
			funcs = slices.Concat(funcs[i:], funcs[:i])
			break
		}
	}
	source := func(name string) (ternary.ScalarFunc, error) {
		return reg.Function(name, cfg.Game)
	}

	p := tea.NewProgram(viz.NewExplorer(funcs, source, cfg.Steps, cfg.Palette), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runGeoJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Function = args[0]
	}
	values, err := sampleFunction(cfg)
	if err != nil {
		return err
	}
	st, err := ternary.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}
	r, err := colorRange(cmd, cfg, values)
	if err != nil {
		return err
	}
	if r == nil {
		auto, err := ternary.ValueRange(values)
		if err != nil {
			return err
		}
		r = &auto
	}
	p, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return err
	}

	data, err := export.CellsGeoJSON(ternary.Cells(values, cfg.Steps, st, nil), cfg.Steps, *r, p)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.Success.Render("wrote"), output)
	return nil
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tFUNCTION\tTIME\tSTEPS\tSTYLE\tPALETTE\tCELLS")
	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%d\n",
			r.ID,
			r.Kind,
			r.Function,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Steps,
			r.Style,
			r.Palette,
			r.Cells,
		)
	}
	return w.Flush()
}

func runRerender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	values, err := st.LoadValues(args[0])
	if err != nil {
		return err
	}

	cfg, err := baseConfig()
	if err != nil {
		return err
	}
	cfg.Function, cfg.Game = meta.Function, meta.Game
	cfg.Steps, cfg.Style, cfg.Boundary = meta.Steps, meta.Style, meta.Boundary
	cfg.Scientific = meta.Scientific
	if meta.Palette != "" {
		cfg.Palette = meta.Palette
	}
	if meta.Range != nil {
		cfg.Range = &config.RangeConfig{Min: meta.Range.Min, Max: meta.Range.Max}
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return renderValues(cmd, cfg, values, meta.Kind, meta.ID)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig()
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.Success.Render("wrote"), args[0])
	return nil
}

func palettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range palette.Names() {
				p, err := palette.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Printf("  %-10s %s\n", name, viz.Swatch(p, 32))
			}
			return nil
		},
	}
}

func functionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "list scalar functions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range dynamics.NewRegistry().ListFunctions() {
				fmt.Printf("  %s\n", name)
			}
		},
	}
}

func gamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "list games and their payoff matrices",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := dynamics.NewRegistry()
			for _, name := range reg.ListGames() {
				g, err := reg.Game(name)
				if err != nil {
					return err
				}
				fmt.Println(viz.Title.Render(name))
				for _, row := range g.A {
					fmt.Printf("  %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
				}
			}
			fmt.Printf("\nintegrators: %s\n", strings.Join(reg.ListIntegrators(), ", "))
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %s\n", name, viz.Subtle.Render(fmt.Sprintf("%s, steps=%d, %s, %s", p.Function, p.Steps, p.Style, p.Palette)))
			}
		},
	}
}
