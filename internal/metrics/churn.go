package metrics

import "github.com/san-kum/lifesim/internal/life"

// Births counts cells born over a run. A cell of age 1 after a tick was
// born in that tick; the first observation is the seed and is not counted.
type Births struct {
	name   string
	seeded bool
	total  int
}

func NewBirths() *Births { return &Births{name: "births"} }

func (b *Births) Name() string { return b.name }

func (b *Births) Observe(g *life.Grid) {
	if !b.seeded {
		b.seeded = true
		return
	}
	b.total += newborns(g)
}

func (b *Births) Value() float64 { return float64(b.total) }

func (b *Births) Reset() {
	b.seeded = false
	b.total = 0
}

// Deaths counts cells that died over a run, derived from the population
// change and the number of births.
type Deaths struct {
	name    string
	seeded  bool
	prevPop int
	total   int
}

func NewDeaths() *Deaths { return &Deaths{name: "deaths"} }

func (d *Deaths) Name() string { return d.name }

func (d *Deaths) Observe(g *life.Grid) {
	pop := g.Population()
	if d.seeded {
		d.total += d.prevPop + newborns(g) - pop
	}
	d.seeded = true
	d.prevPop = pop
}

func (d *Deaths) Value() float64 { return float64(d.total) }

func (d *Deaths) Reset() {
	d.seeded = false
	d.prevPop = 0
	d.total = 0
}

func newborns(g *life.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c == 1 {
			n++
		}
	}
	return n
}
