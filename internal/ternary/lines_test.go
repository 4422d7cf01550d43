package ternary_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ternary/internal/figure"
	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
)

var _ = Describe("Lines", func() {
	It("draws the boundary and resizes the window", func() {
		s := ternary.Boundary(nil, 1, figure.Style{})
		fig := s.(*figure.Figure)
		Expect(fig.Count(figure.KindLine)).To(Equal(3))
		Expect(fig.Limits).To(Equal(simplex.CanvasBounds(1)))
		Expect(fig.Elements[0].Style.LineColor).To(Equal(figure.DefaultLineColor))
	})

	It("draws only interior gridlines", func() {
		fig := figure.New()
		ternary.Gridlines(fig, 5, figure.Style{LineColor: "#cccccc"})
		Expect(fig.Count(figure.KindLine)).To(Equal(4 + 2*5))
		Expect(fig.Limits).To(Equal(simplex.CanvasBounds(5)))
		for _, e := range fig.Elements {
			Expect(e.Style.LineColor).To(Equal("#cccccc"))
		}
	})

	It("plots a trajectory in input order without deduplication", func() {
		fig := figure.New()
		pts := []simplex.Point{{1, 0, 0}, {0, 1, 0}, {0, 1, 0}, {0, 0, 1}}
		ternary.Plot(fig, pts, figure.Style{})
		Expect(fig.Elements).To(HaveLen(1))
		Expect(fig.Elements[0].Kind).To(Equal(figure.KindPolyline))
		Expect(fig.Elements[0].Points).To(Equal(simplex.ProjectAll(pts)))
	})

	It("overlays the boundary once after multiple trajectories", func() {
		fig := figure.New()
		trajectories := [][]simplex.Point{
			{{1, 0, 0}, {0.5, 0.5, 0}},
			{{0, 0, 1}, {0.2, 0.2, 0.6}},
			{{0, 1, 0}, {0.3, 0.3, 0.4}},
		}
		ternary.PlotMultiple(fig, trajectories, 1, figure.Style{})
		Expect(fig.Count(figure.KindPolyline)).To(Equal(3))
		Expect(fig.Count(figure.KindLine)).To(Equal(3))
		Expect(fig.Elements[0].Style.LineWidth).To(Equal(2.0))
		Expect(fig.Elements[len(fig.Elements)-1].Kind).To(Equal(figure.KindLine))
	})
})
