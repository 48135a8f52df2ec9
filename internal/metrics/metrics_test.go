package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

func blinker(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetCells([]life.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}); err != nil {
		t.Fatal(err)
	}
	return g
}

func observe(g *life.Grid, ticks int, ms ...sim.Metric) {
	for _, m := range ms {
		m.Observe(g)
	}
	for i := 0; i < ticks; i++ {
		g.Tick()
		for _, m := range ms {
			m.Observe(g)
		}
	}
}

func TestBirthsDeaths(t *testing.T) {
	g := blinker(t)
	births, deaths := NewBirths(), NewDeaths()

	observe(g, 2, births, deaths)

	if births.Value() != 4 {
		t.Errorf("births = %v, want 4", births.Value())
	}
	if deaths.Value() != 4 {
		t.Errorf("deaths = %v, want 4", deaths.Value())
	}

	births.Reset()
	deaths.Reset()
	if births.Value() != 0 || deaths.Value() != 0 {
		t.Error("reset did not clear counters")
	}
}

func TestAgeMetrics(t *testing.T) {
	g := blinker(t)
	mean, oldest := NewMeanAge(), NewMaxAge()

	observe(g, 1, mean, oldest)

	want := (1.0 + 4.0/3.0) / 2
	if math.Abs(mean.Value()-want) > 1e-9 {
		t.Errorf("mean age = %v, want %v", mean.Value(), want)
	}
	if oldest.Value() != 2 {
		t.Errorf("max age = %v, want 2", oldest.Value())
	}
}

func TestMaxAge_Capped(t *testing.T) {
	g, _ := life.New(4, 4)
	_ = g.SetCells([]life.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})
	oldest := NewMaxAge()

	observe(g, life.MaxAge+10, oldest)

	if oldest.Value() != life.MaxAge {
		t.Errorf("max age = %v, want %d", oldest.Value(), life.MaxAge)
	}
}

func TestPopulationMetrics(t *testing.T) {
	g := blinker(t)
	pop, peak, density := NewPopulation(), NewPeakPopulation(), NewDensity()

	observe(g, 3, pop, peak, density)

	if pop.Value() != 3 || peak.Value() != 3 {
		t.Errorf("population %v peak %v, want 3", pop.Value(), peak.Value())
	}
	if math.Abs(density.Value()-3.0/25.0) > 1e-9 {
		t.Errorf("density = %v", density.Value())
	}
}

func TestMeanAge_EmptyGrid(t *testing.T) {
	g, _ := life.New(3, 3)
	m := NewMeanAge()
	observe(g, 2, m)
	if m.Value() != 0 {
		t.Errorf("expected 0 on empty grid, got %v", m.Value())
	}
}

func TestDefaultWithSimulator(t *testing.T) {
	s := sim.New(blinker(t))
	for _, m := range Default() {
		s.AddMetric(m)
	}

	result, err := s.Run(context.Background(), sim.Config{Generations: 4})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"population", "peak_population", "births", "deaths", "density", "mean_age", "max_age"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if result.Metrics["births"] != 8 {
		t.Errorf("births = %v, want 8", result.Metrics["births"])
	}
}
