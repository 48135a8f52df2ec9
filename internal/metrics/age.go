package metrics

import "github.com/san-kum/lifesim/internal/life"

// MeanAge averages the mean age of live cells over every generation that
// had a live cell.
type MeanAge struct {
	name    string
	samples int
	total   float64
}

func NewMeanAge() *MeanAge { return &MeanAge{name: "mean_age"} }

func (m *MeanAge) Name() string { return m.name }

func (m *MeanAge) Observe(g *life.Grid) {
	sum, n := 0, 0
	for _, c := range g.Cells() {
		if c.Alive() {
			sum += int(c)
			n++
		}
	}
	if n == 0 {
		return
	}
	m.total += float64(sum) / float64(n)
	m.samples++
}

func (m *MeanAge) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanAge) Reset() {
	m.samples = 0
	m.total = 0
}

// MaxAge is the oldest cell seen during a run. It never exceeds life.MaxAge.
type MaxAge struct {
	name string
	max  life.Cell
}

func NewMaxAge() *MaxAge { return &MaxAge{name: "max_age"} }

func (m *MaxAge) Name() string { return m.name }

func (m *MaxAge) Observe(g *life.Grid) {
	for _, c := range g.Cells() {
		if c > m.max {
			m.max = c
		}
	}
}

func (m *MaxAge) Value() float64 { return float64(m.max) }
func (m *MaxAge) Reset()         { m.max = 0 }
