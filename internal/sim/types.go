package sim

import (
	"errors"

	"github.com/san-kum/lifesim/internal/life"
)

var ErrInvalidConfig = errors.New("sim: invalid run configuration")

// Metric accumulates a statistic over the generations of a run.
type Metric interface {
	Name() string
	Observe(g *life.Grid)
	Value() float64
	Reset()
}

// Observer is notified after every generation.
type Observer interface {
	OnGeneration(g *life.Grid)
}

type Config struct {
	Generations int
	StopOnCycle bool
}

type StopReason string

const (
	StopCompleted StopReason = "completed"
	StopExtinct   StopReason = "extinct"
	StopCycle     StopReason = "cycle"
	StopCanceled  StopReason = "canceled"
)

type Result struct {
	Width       int
	Height      int
	Seed        int64
	Generations int
	Populations []int
	Metrics     map[string]float64
	Reason      StopReason
	// CycleStart and Period are set when Reason is StopCycle: the generation
	// at CycleStart reappears every Period generations.
	CycleStart int
	Period     int
	Final      []life.Cell
}
