package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Steps != DefaultSteps {
		t.Errorf("expected steps %d, got %d", DefaultSteps, cfg.Steps)
	}
	if cfg.Style != "triangular" {
		t.Errorf("expected triangular, got %s", cfg.Style)
	}
	if !cfg.Boundary || !cfg.Colorbar {
		t.Error("boundary and colorbar should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.yaml")
	data := []byte(`
steps: 12
style: hex
palette: plasma
range:
  min: 0
  max: 2
gridlines:
  enabled: true
  line_color: "#333333"
  line_width: 0.25
output:
  renderer: svg
  format: svg
  width: 300
  height: 250
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Steps != 12 || cfg.Style != "hex" || cfg.Palette != "plasma" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if r := cfg.HeatmapRange(); r == nil || r.Max != 2 {
		t.Errorf("expected range max 2, got %+v", r)
	}
	if !cfg.Gridlines.Enabled || cfg.Gridlines.Style.LineColor != "#333333" || cfg.Gridlines.Style.LineWidth != 0.25 {
		t.Errorf("unexpected gridlines %+v", cfg.Gridlines)
	}
	// untouched fields keep defaults
	if cfg.Function != DefaultFunction || cfg.Trajectory.Integrator != "rk4" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "steps: [1"},
		{"zero steps", "steps: 0"},
		{"bad style", "style: square"},
		{"inverted range", "range: {min: 2, max: 1}"},
		{"bad renderer", "output: {renderer: canvas}"},
		{"negative trajectory steps", "trajectory: {steps: -5}"},
		{"zero trajectory dt", "trajectory: {dt: 0}"},
		{"negative trajectory dt", "trajectory: {dt: -0.1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fig.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.yaml")
	cfg := DefaultConfig()
	cfg.Steps = 17
	cfg.Trajectory.Starts = [][3]float64{{0.2, 0.3, 0.5}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Steps != 17 || len(got.Starts()) != 1 || got.Starts()[0][2] != 0.5 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hex")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Style != "hexagonal" || cfg.Steps != 20 {
		t.Errorf("unexpected preset %+v", cfg)
	}
	if cfg.Output.Renderer != DefaultRenderer {
		t.Error("preset should keep default output settings")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	cfg.Steps = 1
	if Presets["hex"].Steps != 20 {
		t.Error("GetPreset must not hand out the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	sort.Strings(names)
	if len(names) != len(Presets) || names[0] != "coarse" {
		t.Errorf("unexpected presets %v", names)
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
