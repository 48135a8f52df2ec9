package metrics

import (
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

// Default returns the metric set recorded for every stored run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewPopulation(),
		NewPeakPopulation(),
		NewBirths(),
		NewDeaths(),
		NewDensity(),
		NewMeanAge(),
		NewMaxAge(),
	}
}

// Population reports the population of the last observed generation.
type Population struct {
	name  string
	value int
}

func NewPopulation() *Population { return &Population{name: "population"} }

func (p *Population) Name() string         { return p.name }
func (p *Population) Observe(g *life.Grid) { p.value = g.Population() }
func (p *Population) Value() float64       { return float64(p.value) }
func (p *Population) Reset()               { p.value = 0 }

type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{name: "peak_population"} }

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(g *life.Grid) {
	if n := g.Population(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// Density is the mean fraction of live cells across observed generations.
type Density struct {
	name    string
	samples int
	total   float64
}

func NewDensity() *Density { return &Density{name: "density"} }

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(g *life.Grid) {
	d.total += float64(g.Population()) / float64(g.Width()*g.Height())
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

func (d *Density) Reset() {
	d.samples = 0
	d.total = 0
}
