package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/logging"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	if err := cfg.Populate(g); err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := sim.New(g)
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	label := cfg.Label()
	fmt.Printf("running %s on %dx%d...\n", label, cfg.Width, cfg.Height)
	start := time.Now()

	result, runErr := s.Run(ctx, sim.Config{Generations: cfg.Generations, StopOnCycle: cfg.StopOnCycle})
	if result == nil {
		return runErr
	}
	result.Seed = cfg.Seed
	elapsed := time.Since(start)

	runID, err := st.Save(label, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d (%s)\n", result.Generations, result.Reason)
	if result.Reason == sim.StopCycle {
		fmt.Printf("cycle: period %d from generation %d\n", result.Period, result.CycleStart)
	}
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, result.Metrics[name])
	}

	return runErr
}

// reseeder returns a function that repopulates a grid, advancing the seed
// each time so random soups differ.
func reseeder(cfg *config.Config) func(g *life.Grid) error {
	return func(g *life.Grid) error {
		cfg.Seed++
		return cfg.Populate(g)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("live view needs a terminal")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Fit the grid to the terminal unless a size was requested.
	sized := preset != "" || configFile != "" || cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
	if !sized {
		if cols, rows, err := term.GetSize(fd); err == nil {
			cfg.Width = max(cols-44, 8)
			cfg.Height = max((rows-6)*2, 8)
		}
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	if err := cfg.Populate(g); err != nil {
		return err
	}

	m := viz.NewModel(g, reseeder(cfg), cfg.Label(), cfg.TPS).WithTheme(theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	if err := cfg.Populate(g); err != nil {
		return err
	}
	return gui.Run(g, gui.Options{
		Title:  "lifesim: " + cfg.Label(),
		Scale:  scale,
		TPS:    cfg.TPS,
		Reseed: reseeder(cfg),
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tGENS\tREASON")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Generations,
			run.Reason,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("generations: %d (%s)\n\n", meta.Generations, meta.Reason)

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("population vs generation"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	pops, err := st.LoadPopulation(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, pops)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	pops, err := st.LoadPopulation(args[0])
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, p := range pops {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(p)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
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

	fmt.Printf("run: %s  generation %d  population %d\n\n", meta.ID, meta.Generations, g.Population())
	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.Alive(r, c) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPATTERN\tSIZE\tGENS\tTPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\n", name, p.Pattern, p.Width, p.Height, p.Generations, p.TPS)
	}
	return w.Flush()
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, name := range patterns.Names() {
		p, err := patterns.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, p.Width, p.Height, len(p.Cells), p.Description)
	}
	return w.Flush()
}

func benchGrid(cmd *cobra.Command, args []string) error {
	sizes := [][2]int{{64, 64}, {150, 80}, {256, 256}, {512, 512}}
	const ticks = 200

	fmt.Printf("benchmarking %d generations per size\n\n", ticks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCELLS\tTIME\tGENS/SEC\tCELLS/SEC")

	for _, sz := range sizes {
		g, err := life.New(sz[0], sz[1])
		if err != nil {
			return err
		}
		if err := g.SetCells(patterns.Random(sz[0], sz[1], 0.3, 42)); err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < ticks; i++ {
			g.Tick()
		}
		elapsed := time.Since(start)

		cells := sz[0] * sz[1]
		gps := float64(ticks) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.0f\n", sz[0], sz[1], cells, elapsed, gps, gps*float64(cells))
	}

	return w.Flush()
}

func runSurvey(cmd *cobra.Command, args []string) error {
	e := &sim.Ensemble{
		Width:     width,
		Height:    height,
		Density:   density,
		NumRuns:   runs,
		SeedStart: seedStart,
		Metrics:   metrics.Default,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := e.Run(ctx, sim.Config{Generations: generations, StopOnCycle: true})
	if err != nil {
		return err
	}
	logging.Logger().Info("survey finished",
		zap.Int("runs", len(results)),
		zap.Duration("elapsed", time.Since(start)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFATE\tGENS\tPERIOD\tFINAL\tPEAK")
	fates := make(map[sim.StopReason]int)
	for _, r := range results {
		fates[r.Reason]++
		period := "-"
		if r.Reason == sim.StopCycle {
			period = strconv.Itoa(r.Period)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.0f\t%.0f\n",
			r.Seed, r.Reason, r.Generations, period,
			r.Metrics["population"], r.Metrics["peak_population"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%dx%d soups at density %.2f: ", width, height, density)
	for i, reason := range []sim.StopReason{sim.StopExtinct, sim.StopCycle, sim.StopCompleted} {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%d %s", fates[reason], reason)
	}
	fmt.Println()
	return nil
}
