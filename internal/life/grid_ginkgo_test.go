package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

var _ = Describe("Grid", func() {
	var g *life.Grid

	BeforeEach(func() {
		var err error
		g, err = life.New(6, 6)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("rejects non-positive dimensions", func() {
			_, err := life.New(0, 3)
			Expect(err).To(MatchError(life.ErrInvalidDimensions))
		})

		It("starts with every cell dead", func() {
			Expect(g.Cells()).To(HaveLen(36))
			Expect(g.Cells()).To(HaveEach(life.Cell(0)))
		})
	})

	Describe("toroidal neighbours", func() {
		It("wraps row -1 to the last row", func() {
			row, col := g.Wrap(-1, 0)
			Expect(row).To(Equal(5))
			Expect(col).To(Equal(0))
		})

		It("counts neighbours across the opposite edge", func() {
			Expect(g.SetCells([]life.Coord{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 5}})).To(Succeed())
			Expect(g.LiveNeighbours(g.Index(0, 0))).To(Equal(3))
		})
	})

	DescribeTable("transition rule",
		func(alive bool, n int, want bool) {
			Expect(life.Rule(alive, n)).To(Equal(want))
		},
		Entry("dead with 2", false, 2, false),
		Entry("dead with 3 is born", false, 3, true),
		Entry("dead with 4", false, 4, false),
		Entry("alive with 1 dies", true, 1, false),
		Entry("alive with 2 survives", true, 2, true),
		Entry("alive with 3 survives", true, 3, true),
		Entry("alive with 4 dies", true, 4, false),
		Entry("alive with 8 dies", true, 8, false),
	)

	Describe("Tick", func() {
		It("advances a glider by one step", func() {
			Expect(g.SetCells([]life.Coord{
				{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
			})).To(Succeed())

			g.Tick()

			Expect(g.LiveCoords()).To(ConsistOf(
				life.Coord{Row: 2, Col: 1}, life.Coord{Row: 2, Col: 3},
				life.Coord{Row: 3, Col: 2}, life.Coord{Row: 3, Col: 3},
				life.Coord{Row: 4, Col: 2},
			))
		})

		It("returns a glider to its shape after a full lap of the torus", func() {
			start := []life.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}
			Expect(g.SetCells(start)).To(Succeed())

			for i := 0; i < 24; i++ {
				g.Tick()
			}

			Expect(g.LiveCoords()).To(ConsistOf(start))
		})

		It("caps the age of a still life", func() {
			Expect(g.SetCells([]life.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})).To(Succeed())
			for i := 0; i < 2*life.MaxAge; i++ {
				g.Tick()
			}
			Expect(g.Age(1, 1)).To(Equal(life.Cell(life.MaxAge)))
		})
	})

	Describe("Clear", func() {
		It("is idempotent", func() {
			g.ToggleCell(3, 3)
			g.Clear()
			first := g.Snapshot()
			g.Clear()
			Expect(g.Snapshot()).To(Equal(first))
			Expect(g.Population()).To(BeZero())
		})
	})
})
