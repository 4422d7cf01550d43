package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/ternary"
)

const (
	DefaultSteps    = 30
	DefaultStyle    = "triangular"
	DefaultFunction = "entropy"
	DefaultGame     = "rock-paper-scissors"
	DefaultRenderer = "plot"
	DefaultFormat   = "png"
	DefaultWidth    = 600
	DefaultHeight   = 500
)

type Config struct {
	Steps      int          `yaml:"steps"`
	Style      string       `yaml:"style"`
	Boundary   bool         `yaml:"boundary"`
	Palette    string       `yaml:"palette"`
	Range      *RangeConfig `yaml:"range,omitempty"`
	Ticks      int          `yaml:"ticks"`
	Scientific bool         `yaml:"scientific"`
	Colorbar   bool         `yaml:"colorbar"`
	Function   string       `yaml:"function"`
	Game       string       `yaml:"game,omitempty"`
	Gridlines  LineConfig   `yaml:"gridlines"`
	Border     LineConfig   `yaml:"border"`
	Trajectory TrajConfig   `yaml:"trajectory"`
	Output     OutputConfig `yaml:"output"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type LineConfig struct {
	Enabled bool         `yaml:"enabled"`
	Style   figure.Style `yaml:",inline"`
}

type TrajConfig struct {
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Steps      int          `yaml:"steps"`
	Starts     [][3]float64 `yaml:"starts,omitempty"`
	Style      figure.Style `yaml:",inline"`
}

type OutputConfig struct {
	Renderer string `yaml:"renderer"`
	Format   string `yaml:"format"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Steps:    DefaultSteps,
		Style:    DefaultStyle,
		Boundary: true,
		Palette:  "jet",
		Ticks:    figure.DefaultTicks,
		Colorbar: true,
		Function: DefaultFunction,
		Gridlines: LineConfig{
			Style: figure.Style{LineColor: "#ffffff", LineWidth: 0.5, Alpha: 0.6},
		},
		Border: LineConfig{
			Enabled: true,
			Style:   figure.Style{LineColor: "#000000", LineWidth: 1.5},
		},
		Trajectory: TrajConfig{
			Integrator: "rk4",
			Dt:         0.01,
			Steps:      3000,
			Style:      figure.Style{LineWidth: 1.5},
		},
		Output: OutputConfig{
			Renderer: DefaultRenderer,
			Format:   DefaultFormat,
			Width:    DefaultWidth,
			Height:   DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("config: steps must be at least 1, got %d", c.Steps)
	}
	if _, err := ternary.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Range != nil && c.Range.Max < c.Range.Min {
		return fmt.Errorf("config: range max %g below min %g", c.Range.Max, c.Range.Min)
	}
	if c.Trajectory.Steps < 0 {
		return fmt.Errorf("config: trajectory steps must not be negative, got %d", c.Trajectory.Steps)
	}
	if !(c.Trajectory.Dt > 0) || math.IsInf(c.Trajectory.Dt, 0) {
		return fmt.Errorf("config: trajectory dt must be positive, got %g", c.Trajectory.Dt)
	}
	switch c.Output.Renderer {
	case "plot", "svg":
	default:
		return fmt.Errorf("config: unknown renderer %q (want plot or svg)", c.Output.Renderer)
	}
	return nil
}

// HeatmapRange returns the explicit color range, if any.
func (c *Config) HeatmapRange() *ternary.Range {
	if c.Range == nil {
		return nil
	}
	return &ternary.Range{Min: c.Range.Min, Max: c.Range.Max}
}

// Starts returns the configured trajectory start points.
func (c *Config) Starts() [][3]float64 {
	return c.Trajectory.Starts
}
