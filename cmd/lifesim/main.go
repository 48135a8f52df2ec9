package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/logging"
)

var (
	dataDir  string
	logLevel string
	logJSON  bool

	configFile  string
	preset      string
	width       int
	height      int
	generations int
	pattern     string
	patternFile string
	row         int
	col         int
	center      bool
	density     float64
	seed        int64
	tps         int
	stopOnCycle bool

	theme string
	scale int

	runs      int
	seedStart int64

	svgScale int
	svgPlot  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "lifesim",
		Short:         "toroidal game of life lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, logJSON)
			if err != nil {
				return err
			}
			logging.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Logger().Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the result",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addGridFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "classic", "colour theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run a simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addGridFlags(guiCmd)
	guiCmd.Flags().IntVar(&scale, "scale", 6, "pixels per cell")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export population to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the final generation of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		RunE:  listPatterns,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark generation throughput",
		RunE:  benchGrid,
	}

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "run many random soups and summarise their fate",
		RunE:  runSurvey,
	}
	surveyCmd.Flags().IntVar(&width, "width", 64, "grid width")
	surveyCmd.Flags().IntVar(&height, "height", 64, "grid height")
	surveyCmd.Flags().IntVar(&generations, "generations", 2000, "generation limit per run")
	surveyCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "initial live fraction")
	surveyCmd.Flags().IntVar(&runs, "runs", 16, "number of soups")
	surveyCmd.Flags().Int64Var(&seedStart, "seed", 1, "first seed")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population statistics and dominant period",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the final generation or population plot to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgScale, "scale", 8, "pixels per cell")
	exportSVGCmd.Flags().BoolVar(&svgPlot, "population", false, "plot population instead of the grid")
	exportSVGCmd.Flags().StringVar(&theme, "theme", "classic", "colour theme")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, showCmd, analyzeCmd, presetsCmd, patternsCmd, benchCmd, surveyCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&width, "width", d.Width, "grid width")
	cmd.Flags().IntVar(&height, "height", d.Height, "grid height")
	cmd.Flags().IntVar(&generations, "generations", d.Generations, "generation limit")
	cmd.Flags().StringVar(&pattern, "pattern", d.Pattern, "built-in pattern or \"random\"")
	cmd.Flags().StringVar(&patternFile, "pattern-file", "", "pattern file (.rle or .cells)")
	cmd.Flags().IntVar(&row, "row", 0, "pattern row offset")
	cmd.Flags().IntVar(&col, "col", 0, "pattern column offset")
	cmd.Flags().BoolVar(&center, "center", d.Offset.Center, "centre the pattern")
	cmd.Flags().Float64Var(&density, "density", d.Density, "random soup live fraction")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&tps, "tps", d.TPS, "generations per second in live views")
	cmd.Flags().BoolVar(&stopOnCycle, "stop-on-cycle", d.StopOnCycle, "stop when a generation repeats")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
		cfg.PatternFile = ""
	}
	if flags.Changed("pattern-file") {
		cfg.PatternFile = patternFile
	}
	if flags.Changed("row") || flags.Changed("col") {
		cfg.Offset = config.OffsetConfig{Row: row, Col: col}
	}
	if flags.Changed("center") {
		cfg.Offset.Center = center
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("stop-on-cycle") {
		cfg.StopOnCycle = stopOnCycle
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Logger().Debug("resolved config",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("pattern", cfg.Label()),
		zap.Int64("seed", cfg.Seed))
	return cfg, nil
}
