package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/automation"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/viz"
)

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	pops, err := st.LoadPopulation(args[0])
	if err != nil {
		return err
	}

	s := analysis.Summarize(pops)
	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Reason)
	fmt.Printf("samples:  %d\n", s.Samples)
	fmt.Printf("mean:     %.2f\n", s.Mean)
	fmt.Printf("stddev:   %.2f\n", s.StdDev)
	fmt.Printf("range:    %d..%d\n", s.Min, s.Max)
	fmt.Printf("final:    %d\n", s.Final)
	if period, ok := analysis.DominantPeriod(pops); ok {
		fmt.Printf("dominant: period %.2f generations\n", period)
	} else {
		fmt.Println("dominant: none")
	}
	if meta.Period > 0 {
		fmt.Printf("exact:    period %d from generation %d\n", meta.Period, meta.CycleStart)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if svgPlot {
		pops, err := st.LoadPopulation(args[0])
		if err != nil {
			return err
		}
		svg := export.PopulationToSVG(pops, 800, 300, "#00ff00")
		if svg == "" {
			return fmt.Errorf("not enough data to plot")
		}
		_, err = fmt.Fprint(os.Stdout, svg)
		return err
	}

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	snap, err := st.LoadSnapshot(args[0])
	if err != nil {
		return err
	}
	g, err := life.New(meta.Width, meta.Height)
	if err != nil {
		return err
	}
	if err := g.SetCells(snap.Cells); err != nil {
		return err
	}

	svg, err := export.GridToSVG(g.Width(), g.Height(), g.Cells(), svgScale, viz.GetTheme(theme))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, svg)
	return err
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s (%d steps)\n", sc.Name, len(sc.Steps))
	results, runErr := automation.RunScenario(ctx, sc, st)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN ID\tGENS\tFATE\tFINAL")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.0f\n", i+1, r.RunID, r.Result.Generations, r.Result.Reason, r.Result.Metrics["population"])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}
