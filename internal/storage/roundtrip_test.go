package storage_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
)

var _ = Describe("Stored runs", func() {
	var (
		st     *storage.Store
		result *sim.Result
		runID  string
	)

	BeforeEach(func() {
		st = storage.New(GinkgoT().TempDir())
		Expect(st.Init()).To(Succeed())

		g, err := life.New(20, 12)
		Expect(err).NotTo(HaveOccurred())
		acorn, err := patterns.Get("acorn")
		Expect(err).NotTo(HaveOccurred())
		row, col := acorn.Centered(g.Width(), g.Height())
		Expect(g.SetCells(acorn.Place(row, col, g.Width(), g.Height()))).To(Succeed())

		s := sim.New(g)
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}
		result, err = s.Run(context.Background(), sim.Config{Generations: 40})
		Expect(err).NotTo(HaveOccurred())

		runID, err = st.Save("acorn", 7, result)
		Expect(err).NotTo(HaveOccurred())
	})

	It("restores the final generation from the snapshot", func() {
		snap, err := st.LoadSnapshot(runID)
		Expect(err).NotTo(HaveOccurred())

		g, err := life.New(result.Width, result.Height)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.SetCells(snap.Cells)).To(Succeed())

		for i, c := range result.Final {
			Expect(g.Cells()[i].Alive()).To(Equal(c.Alive()), "cell %d", i)
		}
	})

	It("keeps one population sample per generation", func() {
		pops, err := st.LoadPopulation(runID)
		Expect(err).NotTo(HaveOccurred())
		Expect(pops).To(Equal(result.Populations))
		Expect(pops).To(HaveLen(result.Generations + 1))
	})

	It("lists the run with its metadata", func() {
		runs, err := st.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].ID).To(Equal(runID))
		Expect(runs[0].Seed).To(Equal(int64(7)))
		Expect(runs[0].Metrics).To(HaveKey("peak_population"))
	})
})
