package ternary_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/palette"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
)

func fullLattice(steps int, boundary bool) ternary.Values {
	return ternary.Sample(func(p simplex.Point) float64 { return p[0] + 2*p[1] }, steps, boundary)
}

// cells at (i,j) whose (i,j+1) and (i+1,j) neighbors are both present
func completeNeighborhoods(d ternary.Values) int {
	n := 0
	for k := range d {
		_, right := d[simplex.Key{I: k.I, J: k.J + 1}]
		_, up := d[simplex.Key{I: k.I + 1, J: k.J}]
		if right && up {
			n++
		}
	}
	return n
}

var _ = Describe("Heatmap", func() {
	var fig *figure.Figure

	BeforeEach(func() {
		fig = figure.New()
	})

	It("rejects an empty value map", func() {
		_, err := ternary.Heatmap(fig, ternary.Values{}, 4, ternary.HeatmapOptions{})
		Expect(err).To(MatchError(ternary.ErrEmptyValues))
		Expect(fig.Elements).To(BeEmpty())
	})

	It("rejects a non-positive resolution", func() {
		_, err := ternary.Heatmap(fig, ternary.Values{{I: 0, J: 0}: 1}, 0, ternary.HeatmapOptions{})
		Expect(err).To(MatchError(ternary.ErrInvalidSteps))
	})

	It("rejects unknown styles explicitly", func() {
		_, err := ternary.Heatmap(fig, fullLattice(3, true), 3, ternary.HeatmapOptions{Style: "square"})
		Expect(err).To(MatchError(ternary.ErrUnknownStyle))
		Expect(fig.Elements).To(BeEmpty())
	})

	It("creates a figure when none is given", func() {
		s, err := ternary.Heatmap(nil, fullLattice(3, true), 3, ternary.HeatmapOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&figure.Figure{}))
	})

	Context("triangular", func() {
		DescribeTable("colors one alt triangle per complete neighborhood",
			func(steps int, boundary bool) {
				d := fullLattice(steps, boundary)
				_, err := ternary.Heatmap(fig, d, steps, ternary.HeatmapOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(fig.Count(figure.KindFill)).To(Equal(len(d) + completeNeighborhoods(d)))
			},
			Entry("steps 4, boundary", 4, true),
			Entry("steps 6, interior", 6, false),
			Entry("steps 10, interior", 10, false),
		)

		It("averages the three neighbors for alt triangles", func() {
			d := ternary.Values{
				{I: 0, J: 0}: 0,
				{I: 0, J: 1}: 3,
				{I: 1, J: 0}: 6,
			}
			cells := ternary.Cells(d, 2, ternary.Triangular, nil)
			Expect(cells).To(HaveLen(4))
			alt := cells[3]
			Expect(alt.Alt).To(BeTrue())
			Expect(alt.Key).To(Equal(simplex.Key{I: 0, J: 0}))
			Expect(alt.Value).To(BeNumerically("~", 3.0, 1e-12))
			Expect(alt.Vertices).To(Equal(simplex.AltTriangleCoordinates(0, 0)))
		})

		It("skips alt triangles with a missing neighbor", func() {
			d := ternary.Values{{I: 0, J: 0}: 1, {I: 0, J: 1}: 2}
			_, err := ternary.Heatmap(fig, d, 3, ternary.HeatmapOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Count(figure.KindFill)).To(Equal(2))
		})

		It("fills with the mapped color on face and edge", func() {
			d := ternary.Values{{I: 0, J: 0}: 0, {I: 0, J: 1}: 10}
			p, _ := palette.Lookup("gray")
			_, err := ternary.Heatmap(fig, d, 2, ternary.HeatmapOptions{Palette: p})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Elements[0].Style.FillColor).To(Equal("#000000"))
			Expect(fig.Elements[1].Style.FillColor).To(Equal("#ffffff"))
			Expect(fig.Elements[1].Style.EdgeColor).To(Equal("#ffffff"))
		})

		It("skips keys off the lattice", func() {
			d := ternary.Values{
				{I: 0, J: 0}:  1,
				{I: 5, J: 0}:  2,
				{I: -1, J: 1}: 3,
				{I: 0, J: -2}: 4,
			}
			Expect(ternary.Cells(d, 3, ternary.Triangular, nil)).To(HaveLen(1))
			Expect(ternary.Cells(d, 3, ternary.Hexagonal, nil)).To(HaveLen(1))

			_, err := ternary.Heatmap(fig, d, 3, ternary.HeatmapOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Count(figure.KindFill)).To(Equal(1))
		})

		It("drops alt triangles that reach past the lattice", func() {
			d := ternary.Values{{I: 0, J: 0}: 0, {I: 0, J: 1}: 1, {I: 1, J: 0}: 2}
			cells := ternary.Cells(d, 0, ternary.Triangular, nil)
			Expect(cells).To(HaveLen(1))
			Expect(cells[0].Alt).To(BeFalse())
		})

		It("fills NaN cells with the bad color", func() {
			d := ternary.Values{
				{I: 0, J: 0}: 0,
				{I: 0, J: 1}: math.NaN(),
				{I: 1, J: 0}: math.Inf(1),
				{I: 1, J: 1}: 10,
			}
			p, _ := palette.Lookup("gray")
			cells := ternary.Cells(d, 2, ternary.Hexagonal, nil)
			_, err := ternary.Heatmap(fig, d, 2, ternary.HeatmapOptions{Style: "hex", Palette: p})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Colorbar.Min).To(Equal(0.0))
			Expect(fig.Colorbar.Max).To(Equal(10.0))
			for i, c := range cells {
				if math.IsNaN(c.Value) {
					Expect(fig.Elements[i].Style.FillColor).To(Equal(palette.Hex(palette.BadColor)))
				}
			}
		})

		It("produces identical output on repeated calls", func() {
			d := fullLattice(8, true)
			a, b := figure.New(), figure.New()
			_, _ = ternary.Heatmap(a, d, 8, ternary.HeatmapOptions{})
			_, _ = ternary.Heatmap(b, d, 8, ternary.HeatmapOptions{})
			Expect(a.Elements).To(Equal(b.Elements))
		})
	})

	Context("hexagonal", func() {
		It("dispatches case-insensitively by prefix", func() {
			d := fullLattice(4, true)
			_, err := ternary.Heatmap(fig, d, 4, ternary.HeatmapOptions{Style: "HEX"})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Count(figure.KindFill)).To(Equal(len(d)))

			sizes := map[int]int{}
			for _, e := range fig.Elements {
				sizes[len(e.Points)]++
			}
			Expect(sizes).To(HaveKeyWithValue(4, 3))
			Expect(sizes).To(HaveKey(6))
		})

		It("skips cells without geometry", func() {
			onlyInterior := func(i, j, steps int) ([]simplex.XY, bool) {
				if i == 0 || j == 0 || steps-i-j == 0 {
					return nil, false
				}
				return simplex.HexagonCoordinates(i, j, steps)
			}
			d := fullLattice(5, true)
			_, err := ternary.Heatmap(fig, d, 5, ternary.HeatmapOptions{Style: "hexagonal", HexVertices: onlyInterior})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Count(figure.KindFill)).To(Equal(simplex.LatticeSize(5, false)))
		})
	})

	Context("colorbar", func() {
		It("spans the data range with seven ticks by default", func() {
			d := ternary.Values{{I: 0, J: 0}: -2, {I: 1, J: 0}: 4}
			_, err := ternary.Heatmap(fig, d, 2, ternary.HeatmapOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Colorbar).NotTo(BeNil())
			Expect(fig.Colorbar.Min).To(Equal(-2.0))
			Expect(fig.Colorbar.Max).To(Equal(4.0))
			Expect(fig.Colorbar.Ticks).To(HaveLen(7))
			Expect(fig.Colorbar.Ticks[3].Label).To(Equal("1.0000"))
		})

		It("honors an explicit range", func() {
			d := ternary.Values{{I: 0, J: 0}: 5}
			_, err := ternary.Heatmap(fig, d, 1, ternary.HeatmapOptions{Range: &ternary.Range{Min: 0, Max: 10}, Ticks: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Colorbar.Ticks).To(HaveLen(3))
			Expect(fig.Colorbar.Ticks[2].Value).To(Equal(10.0))
		})

		It("can be suppressed", func() {
			_, err := ternary.Heatmap(fig, fullLattice(2, true), 2, ternary.HeatmapOptions{NoColorbar: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Colorbar).To(BeNil())
		})

		It("uses a shared exponent in scientific mode", func() {
			ticks, offset := ternary.ColorbarTicks(0, 2500, 3, true)
			Expect(offset).To(Equal("1e3"))
			Expect(ticks[1].Label).To(Equal("1.25"))
			Expect(ticks[2].Label).To(Equal("2.50"))
		})

		It("collapses to a single tick for a degenerate range", func() {
			ticks, _ := ternary.ColorbarTicks(3, 3, 7, false)
			Expect(ticks).To(HaveLen(1))
		})
	})
})

var _ = Describe("HeatmapFunc", func() {
	It("evaluates the function on normalized lattice points", func() {
		var seen []simplex.Point
		f := func(p simplex.Point) float64 {
			seen = append(seen, p)
			return p[2]
		}
		fig := figure.New()
		_, err := ternary.HeatmapFunc(fig, f, 4, true, ternary.HeatmapOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(simplex.LatticeSize(4, true)))
		for _, p := range seen {
			Expect(p.Sum()).To(BeNumerically("~", 1.0, 1e-12))
		}
		Expect(fig.Colorbar.Max).To(Equal(1.0))
	})

	It("tolerates NaN on the boundary", func() {
		entropy := func(p simplex.Point) float64 {
			h := 0.0
			for _, x := range p {
				h -= x * math.Log(x)
			}
			return h
		}
		fig := figure.New()
		Expect(func() {
			_, err := ternary.HeatmapFunc(fig, entropy, 6, true, ternary.HeatmapOptions{})
			Expect(err).NotTo(HaveOccurred())
		}).NotTo(Panic())
		Expect(math.IsNaN(fig.Colorbar.Min)).To(BeFalse())
		Expect(math.IsNaN(fig.Colorbar.Max)).To(BeFalse())
		Expect(fig.Colorbar.Max).To(BeNumerically(">", fig.Colorbar.Min))
	})

	It("reports an empty lattice", func() {
		_, err := ternary.HeatmapFunc(nil, func(simplex.Point) float64 { return 0 }, 2, false, ternary.HeatmapOptions{})
		Expect(err).To(MatchError(ternary.ErrEmptyValues))
	})
})

var _ = Describe("ParseStyle", func() {
	DescribeTable("names",
		func(name string, want ternary.Style) {
			got, err := ternary.ParseStyle(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("empty", "", ternary.Triangular),
		Entry("tri", "tri", ternary.Triangular),
		Entry("Triangular", "Triangular", ternary.Triangular),
		Entry("hex", "hex", ternary.Hexagonal),
		Entry("HEXAGONAL", "HEXAGONAL", ternary.Hexagonal),
	)
})

var _ = Describe("ValueRange", func() {
	It("finds min and max", func() {
		r, err := ternary.ValueRange(ternary.Values{{I: 0, J: 0}: 3, {I: 1, J: 0}: -1, {I: 0, J: 1}: math.Pi})
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(ternary.Range{Min: -1, Max: math.Pi}))
	})

	It("ignores non-finite values", func() {
		r, err := ternary.ValueRange(ternary.Values{
			{I: 0, J: 0}: 2,
			{I: 1, J: 0}: math.NaN(),
			{I: 0, J: 1}: math.Inf(1),
			{I: 1, J: 1}: math.Inf(-1),
			{I: 2, J: 0}: 5,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(ternary.Range{Min: 2, Max: 5}))
	})

	It("reports a map with no finite value as empty", func() {
		_, err := ternary.ValueRange(ternary.Values{{I: 0, J: 0}: math.NaN(), {I: 1, J: 0}: math.Inf(1)})
		Expect(err).To(MatchError(ternary.ErrEmptyValues))
	})
})
