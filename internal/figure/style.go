package figure

// Style configures a drawing call. Zero values fall back to the defaults
// of the call site.
type Style struct {
	LineColor  string  `yaml:"line_color,omitempty" json:"line_color,omitempty"`
	LineWidth  float64 `yaml:"line_width,omitempty" json:"line_width,omitempty"`
	FillColor  string  `yaml:"fill_color,omitempty" json:"fill_color,omitempty"`
	EdgeColor  string  `yaml:"edge_color,omitempty" json:"edge_color,omitempty"`
	Alpha      float64 `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Ticks      int     `yaml:"ticks,omitempty" json:"ticks,omitempty"`
	Scientific bool    `yaml:"scientific,omitempty" json:"scientific,omitempty"`
}

const (
	DefaultLineColor = "#000000"
	DefaultLineWidth = 1.0
	DefaultTicks     = 7
)

// WithDefaults fills unset line fields.
func (s Style) WithDefaults() Style {
	if s.LineColor == "" {
		s.LineColor = DefaultLineColor
	}
	if s.LineWidth <= 0 {
		s.LineWidth = DefaultLineWidth
	}
	if s.Alpha <= 0 || s.Alpha > 1 {
		s.Alpha = 1
	}
	if s.Ticks <= 0 {
		s.Ticks = DefaultTicks
	}
	return s
}

// Merge overlays the non-zero fields of o onto s.
func (s Style) Merge(o Style) Style {
	if o.LineColor != "" {
		s.LineColor = o.LineColor
	}
	if o.LineWidth > 0 {
		s.LineWidth = o.LineWidth
	}
	if o.FillColor != "" {
		s.FillColor = o.FillColor
	}
	if o.EdgeColor != "" {
		s.EdgeColor = o.EdgeColor
	}
	if o.Alpha > 0 {
		s.Alpha = o.Alpha
	}
	if o.Ticks > 0 {
		s.Ticks = o.Ticks
	}
	if o.Scientific {
		s.Scientific = true
	}
	return s
}
