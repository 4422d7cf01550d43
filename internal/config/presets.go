package config

import "sort"

var Presets = map[string]*Config{
	"coarse": {
		Steps: 8, Style: "triangular", Boundary: true, Palette: "viridis",
		Ticks: 5, Colorbar: true, Function: "entropy",
		Gridlines: LineConfig{Enabled: true},
	},
	"fine": {
		Steps: 80, Style: "triangular", Boundary: true, Palette: "viridis",
		Ticks: 7, Colorbar: true, Function: "entropy",
	},
	"hex": {
		Steps: 20, Style: "hexagonal", Boundary: true, Palette: "plasma",
		Ticks: 7, Colorbar: true, Function: "dirichlet",
	},
	"fitness": {
		Steps: 40, Style: "triangular", Boundary: true, Palette: "coolwarm",
		Ticks: 7, Colorbar: true, Function: "fitness", Game: "hawk-dove-bourgeois",
	},
	"interior": {
		Steps: 30, Style: "triangular", Boundary: false, Palette: "blackbody",
		Ticks: 7, Scientific: true, Colorbar: true, Function: "product",
	},
}

// GetPreset returns a copy of the named preset layered over the defaults,
// or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Steps = p.Steps
	cfg.Style = p.Style
	cfg.Boundary = p.Boundary
	cfg.Palette = p.Palette
	cfg.Ticks = p.Ticks
	cfg.Scientific = p.Scientific
	cfg.Colorbar = p.Colorbar
	cfg.Function = p.Function
	cfg.Game = p.Game
	if p.Gridlines.Enabled {
		cfg.Gridlines.Enabled = true
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
