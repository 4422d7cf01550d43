package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
)

const cellWidth = 2

// Heatmap draws d as colored terminal cells, one per lattice point, with
// the apex (third component = steps) on the top row. Each row is shifted
// by half a cell so the rows stack into a triangle. Points missing from d
// are left blank.
func Heatmap(d ternary.Values, steps int, r ternary.Range, p palette.Palette) string {
	blank := strings.Repeat(" ", cellWidth)
	var b strings.Builder
	for k := steps; k >= 0; k-- {
		b.WriteString(strings.Repeat(" ", k*cellWidth/2))
		for j := 0; j <= steps-k; j++ {
			key := simplex.Key{I: steps - k - j, J: j}
			v, ok := d[key]
			if !ok {
				b.WriteString(blank)
				continue
			}
			col := palette.ColorMapper(v, r.Min, r.Max, p)
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(col)).Render(blank))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Swatch renders width samples of p as a strip of full blocks.
func Swatch(p palette.Palette, width int) string {
	var b strings.Builder
	for _, c := range palette.Samples(p, width) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(c))).Render("█"))
	}
	return b.String()
}

// Legend is a horizontal colorbar: the swatch between the range labels.
func Legend(r ternary.Range, p palette.Palette, width int) string {
	return fmt.Sprintf("%s %s %s",
		MetricLabel.Render(fmt.Sprintf("%.4g", r.Min)),
		Swatch(p, width),
		MetricLabel.Render(fmt.Sprintf("%.4g", r.Max)))
}
