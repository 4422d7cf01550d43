package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/ternary/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	output     string

	steps      int
	style      string
	paletteArg string
	boundary   bool
	vmin       float64
	vmax       float64
	ticks      int
	scientific bool
	gridlines  bool
	noColorbar bool
	renderer   string
	format     string
	width      int
	height     int
	game       string
	save       bool

	starts     []string
	dt         float64
	iterations int
	integrator string
	field      string
	series     bool
	terminal   bool
	geoOut     string
)

// main registers the ternary commands and exits 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "ternary",
		Short:         "ternary diagrams: heatmaps and trajectories on the 2-simplex",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ternary", "render archive directory")

	heatmapCmd := &cobra.Command{
		Use:   "heatmap [function]",
		Short: "render a heatmap of a scalar function",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeatmap,
	}
	addFigureFlags(heatmapCmd)
	heatmapCmd.Flags().StringVar(&game, "game", "", "game for fitness and speed fields")
	heatmapCmd.Flags().BoolVar(&save, "save", false, "archive the rendered values")

	renderCmd := &cobra.Command{
		Use:   "render [values.csv]",
		Short: "render a heatmap from an i,j,value table",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addFigureFlags(renderCmd)
	renderCmd.Flags().BoolVar(&save, "save", false, "archive the rendered values")

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [game]",
		Short: "plot replicator dynamics trajectories",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrajectory,
	}
	addFigureFlags(trajectoryCmd)
	trajectoryCmd.Flags().StringArrayVar(&starts, "start", nil, "start point a,b,c (repeatable)")
	trajectoryCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	trajectoryCmd.Flags().IntVar(&iterations, "iterations", 3000, "integration steps per trajectory")
	trajectoryCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	trajectoryCmd.Flags().StringVar(&field, "field", "", "scalar field drawn underneath (fitness, speed, ...)")
	trajectoryCmd.Flags().BoolVar(&series, "series", false, "print component time series")
	trajectoryCmd.Flags().BoolVar(&terminal, "terminal", false, "print a braille sketch instead of writing a file")
	trajectoryCmd.Flags().StringVar(&geoOut, "geojson", "", "also write trajectories as GeoJSON")

	previewCmd := &cobra.Command{
		Use:   "preview [function]",
		Short: "draw a heatmap in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	addConfigFlags(previewCmd)
	previewCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "lattice resolution")
	previewCmd.Flags().StringVar(&paletteArg, "palette", "", "palette name")
	previewCmd.Flags().BoolVar(&boundary, "boundary", true, "include boundary points")
	previewCmd.Flags().StringVar(&game, "game", "", "game for fitness and speed fields")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "browse scalar functions interactively",
		Args:  cobra.NoArgs,
		RunE:  runExplore,
	}
	addConfigFlags(exploreCmd)
	exploreCmd.Flags().IntVar(&steps, "steps", 20, "initial lattice resolution")
	exploreCmd.Flags().StringVar(&paletteArg, "palette", "", "palette name")
	exploreCmd.Flags().StringVar(&game, "game", "", "game for fitness and speed fields")

	geojsonCmd := &cobra.Command{
		Use:   "geojson [function]",
		Short: "write tessellation cells as GeoJSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGeoJSON,
	}
	addConfigFlags(geojsonCmd)
	geojsonCmd.Flags().StringVarP(&output, "output", "o", "", "output path (default stdout)")
	geojsonCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "lattice resolution")
	geojsonCmd.Flags().StringVar(&style, "style", config.DefaultStyle, "triangular or hexagonal")
	geojsonCmd.Flags().StringVar(&paletteArg, "palette", "", "palette name")
	geojsonCmd.Flags().BoolVar(&boundary, "boundary", true, "include boundary points")
	geojsonCmd.Flags().Float64Var(&vmin, "min", 0, "color scale minimum")
	geojsonCmd.Flags().Float64Var(&vmax, "max", 1, "color scale maximum")
	geojsonCmd.Flags().StringVar(&game, "game", "", "game for fitness and speed fields")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived renders",
		RunE:  listRenders,
	}

	rerenderCmd := &cobra.Command{
		Use:   "rerender [id]",
		Short: "render an archived value map again",
		Args:  cobra.ExactArgs(1),
		RunE:  runRerender,
	}
	addFigureFlags(rerenderCmd)

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default (or preset) configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(heatmapCmd, renderCmd, trajectoryCmd, previewCmd, exploreCmd, geojsonCmd,
		listCmd, rerenderCmd, configCmd,
		palettesCmd(), functionsCmd(), gamesCmd(), presetsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addFigureFlags(cmd *cobra.Command) {
	addConfigFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "lattice resolution")
	cmd.Flags().StringVar(&style, "style", config.DefaultStyle, "triangular or hexagonal")
	cmd.Flags().StringVar(&paletteArg, "palette", "", "palette name")
	cmd.Flags().BoolVar(&boundary, "boundary", true, "include boundary points")
	cmd.Flags().Float64Var(&vmin, "min", 0, "color scale minimum")
	cmd.Flags().Float64Var(&vmax, "max", 1, "color scale maximum")
	cmd.Flags().IntVar(&ticks, "ticks", 7, "colorbar tick count")
	cmd.Flags().BoolVar(&scientific, "scientific", false, "scientific colorbar labels")
	cmd.Flags().BoolVar(&gridlines, "gridlines", false, "draw lattice gridlines")
	cmd.Flags().BoolVar(&noColorbar, "no-colorbar", false, "omit the colorbar")
	cmd.Flags().StringVar(&renderer, "renderer", config.DefaultRenderer, "plot (gonum) or svg")
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "png, svg or pdf (plot renderer)")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "output width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "output height")
}
