package automation

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/sim"
)

const scenarioYAML = `
name: oscillators
description: a few small periodic patterns
steps:
  - pattern: blinker
    width: 8
    height: 8
    generations: 20
  - preset: pulsar
    generations: 10
    save_as: pulsar_short
  - pattern: random
    width: 16
    height: 16
    density: 0.3
    seed: 5
    generations: 30
`

type memSaver struct{ labels []string }

func (m *memSaver) Save(pattern string, seed int64, result *sim.Result) (string, error) {
	m.labels = append(m.labels, pattern)
	return pattern + "_id", nil
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "oscillators" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	first := sc.Steps[0]
	if first.Width != 8 || first.Pattern != "blinker" || first.TPS != config.DefaultTPS {
		t.Errorf("defaults not applied to step 1: %+v", first.Config)
	}

	second := sc.Steps[1]
	if second.Width != 25 || second.Pattern != "pulsar" || second.Generations != 10 {
		t.Errorf("preset not merged into step 2: %+v", second.Config)
	}
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown preset", "steps:\n  - preset: nope\n"},
		{"invalid size", "steps:\n  - width: -1\n"},
		{"bad yaml", "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	saver := &memSaver{}

	results, err := RunScenario(context.Background(), sc, saver)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Result.Reason != sim.StopCycle || results[0].Result.Period != 2 {
		t.Errorf("blinker step: %s period %d", results[0].Result.Reason, results[0].Result.Period)
	}
	if results[1].Label != "pulsar_short" || results[1].RunID != "pulsar_short_id" {
		t.Errorf("save_as not used: %+v", results[1])
	}
	if len(saver.labels) != 3 {
		t.Errorf("expected 3 saves, got %v", saver.labels)
	}
}

func TestRunScenario_Canceled(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunScenario(ctx, sc, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no completed steps, got %d", len(results))
	}
}
