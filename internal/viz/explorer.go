package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/ternary"
)

// FunctionSource resolves a scalar field by name.
type FunctionSource func(name string) (ternary.ScalarFunc, error)

const (
	minSteps = 1
	maxSteps = 60
)

// Explorer is an interactive heatmap viewer.
type Explorer struct {
	funcs    []string
	fn       int
	source   FunctionSource
	palettes []string
	pal      int
	steps    int
	boundary bool
	theme    int

	values ternary.Values
	rng    ternary.Range
	err    error

	width, height int
}

// NewExplorer starts on the first function in funcs.
func NewExplorer(funcs []string, source FunctionSource, steps int, paletteName string) Explorer {
	m := Explorer{
		funcs:    funcs,
		source:   source,
		palettes: palette.Names(),
		steps:    clampSteps(steps),
		boundary: true,
		width:    80,
		height:   24,
	}
	for i, name := range m.palettes {
		if strings.EqualFold(name, paletteName) {
			m.pal = i
		}
	}
	return m.recompute()
}

func clampSteps(n int) int {
	return min(max(n, minSteps), maxSteps)
}

func (m Explorer) Steps() int          { return m.steps }
func (m Explorer) Function() string    { return m.funcs[m.fn] }
func (m Explorer) PaletteName() string { return m.palettes[m.pal] }
func (m Explorer) Boundary() bool      { return m.boundary }
func (m Explorer) Err() error          { return m.err }
func (m Explorer) Values() ternary.Values {
	return m.values
}

func (m Explorer) recompute() Explorer {
	m.values, m.err = nil, nil
	if len(m.funcs) == 0 {
		m.err = fmt.Errorf("viz: no functions to explore")
		return m
	}
	f, err := m.source(m.funcs[m.fn])
	if err != nil {
		m.err = err
		return m
	}
	m.values = ternary.Sample(f, m.steps, m.boundary)
	if len(m.values) == 0 {
		m.err = ternary.ErrEmptyValues
		return m
	}
	m.rng, m.err = ternary.ValueRange(m.values)
	return m
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=", "up", "k":
		m.steps = clampSteps(m.steps + 1)
	case "-", "_", "down", "j":
		m.steps = clampSteps(m.steps - 1)
	case "right", "l", "f":
		if len(m.funcs) > 0 {
			m.fn = (m.fn + 1) % len(m.funcs)
		}
	case "left", "h":
		if len(m.funcs) > 0 {
			m.fn = (m.fn + len(m.funcs) - 1) % len(m.funcs)
		}
	case "p":
		m.pal = (m.pal + 1) % len(m.palettes)
		return m, nil
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		return m, nil
	case "b":
		m.boundary = !m.boundary
	default:
		return m, nil
	}
	return m.recompute(), nil
}

func (m Explorer) View() string {
	th := Themes[m.theme]
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	frame := Panel.BorderForeground(th.Border)

	var b strings.Builder
	b.WriteString(title.Render("ternary explorer"))
	b.WriteString("  ")
	if len(m.funcs) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(th.Accent).Render(m.Function()))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(Failure.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		p, err := palette.Lookup(m.PaletteName())
		if err != nil {
			b.WriteString(Failure.Render(err.Error()) + "\n")
		} else {
			b.WriteString(Heatmap(m.values, m.steps, m.rng, p))
			b.WriteString("\n")
			b.WriteString(Legend(m.rng, p, min(32, max(m.width-24, 8))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		Metric("steps", m.steps),
		Metric("palette", m.PaletteName()),
		Metric("boundary", m.boundary),
		Metric("cells", len(m.values)),
	}, "  "))
	b.WriteString("\n")
	b.WriteString(muted.Render("+/- steps  ←/→ function  p palette  b boundary  t theme  q quit"))
	return frame.Render(b.String())
}
