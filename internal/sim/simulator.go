package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/logging"
)

type Simulator struct {
	grid      *life.Grid
	metrics   []Metric
	observers []Observer
}

func New(g *life.Grid) *Simulator {
	return &Simulator{
		grid:      g,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Grid() *life.Grid { return s.grid }

// Run ticks the grid up to cfg.Generations times. It stops early when the
// population dies out, when cfg.StopOnCycle is set and a configuration
// repeats, or when ctx is done. On cancellation the partial result is
// returned together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log := logging.Logger().With(
		zap.Int("width", s.grid.Width()),
		zap.Int("height", s.grid.Height()),
	)

	result := &Result{
		Width:       s.grid.Width(),
		Height:      s.grid.Height(),
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
		Reason:      StopCompleted,
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.grid)
	}

	var seen map[string]int
	if cfg.StopOnCycle {
		seen = map[string]int{key(s.grid): s.grid.Generation()}
	}
	result.Populations = append(result.Populations, s.grid.Population())
	start := s.grid.Generation()

	log.Debug("run started", zap.Int("generations", cfg.Generations), zap.Int("population", s.grid.Population()))

	var runErr error
loop:
	for i := 0; i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			result.Reason = StopCanceled
			runErr = ctx.Err()
			log.Info("run canceled", zap.Int("generation", s.grid.Generation()))
			break loop
		default:
		}

		s.grid.Tick()

		for _, m := range s.metrics {
			m.Observe(s.grid)
		}
		for _, obs := range s.observers {
			obs.OnGeneration(s.grid)
		}

		pop := s.grid.Population()
		result.Populations = append(result.Populations, pop)

		if pop == 0 {
			result.Reason = StopExtinct
			log.Info("population extinct", zap.Int("generation", s.grid.Generation()))
			break
		}

		if seen != nil {
			k := key(s.grid)
			if prev, ok := seen[k]; ok {
				result.Reason = StopCycle
				result.CycleStart = prev
				result.Period = s.grid.Generation() - prev
				log.Info("cycle detected",
					zap.Int("generation", s.grid.Generation()),
					zap.Int("cycle_start", prev),
					zap.Int("period", result.Period))
				break
			}
			seen[k] = s.grid.Generation()
		}
	}

	result.Generations = s.grid.Generation() - start
	result.Final = s.grid.Snapshot()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidConfig, cfg.Generations)
	}
	return nil
}

// key packs the live/dead state of every cell into a bitset. Ages are
// ignored so a still life is recognised on its first repeat.
func key(g *life.Grid) string {
	cells := g.Cells()
	bits := make([]byte, (len(cells)+7)/8)
	for i, c := range cells {
		if c.Alive() {
			bits[i/8] |= 1 << (i % 8)
		}
	}
	return string(bits)
}
