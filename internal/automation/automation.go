// Package automation runs scripted batches of simulations described in YAML.
package automation

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/logging"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
)

// Scenario is a named sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Preset, when set, supplies the base config and
// the inline fields override it.
type ScenarioStep struct {
	Preset        string `yaml:"preset"`
	config.Config `yaml:",inline"`
	// SaveAs overrides the pattern label used for the stored run.
	SaveAs string `yaml:"save_as"`
}

// Saver persists a finished run.
type Saver interface {
	Save(pattern string, seed int64, result *sim.Result) (string, error)
}

// StepResult pairs a run with where it was stored.
type StepResult struct {
	Label  string
	RunID  string
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file. Fields a step leaves out
// take the preset's value or the default.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var raw struct {
		Name        string      `yaml:"name"`
		Description string      `yaml:"description"`
		Steps       []yaml.Node `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	sc := &Scenario{Name: raw.Name, Description: raw.Description}
	for i := range raw.Steps {
		var head struct {
			Preset string `yaml:"preset"`
		}
		if err := raw.Steps[i].Decode(&head); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		base := config.DefaultConfig()
		if head.Preset != "" {
			if base = config.GetPreset(head.Preset); base == nil {
				return nil, fmt.Errorf("step %d: unknown preset %s", i+1, head.Preset)
			}
		}
		step := ScenarioStep{Config: *base}
		if err := raw.Steps[i].Decode(&step); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

// RunScenario executes all steps in order. Results of completed steps are
// returned alongside the first error.
func RunScenario(ctx context.Context, scenario *Scenario, saver Saver) ([]StepResult, error) {
	log := logging.Logger().With(zap.String("scenario", scenario.Name))
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg := step.Config
		label := step.SaveAs
		if label == "" {
			label = cfg.Label()
		}
		log.Info("running step", zap.Int("step", i+1), zap.String("label", label))

		g, err := cfg.NewGrid()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := cfg.Populate(g); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s := sim.New(g)
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}
		result, err := s.Run(ctx, sim.Config{Generations: cfg.Generations, StopOnCycle: cfg.StopOnCycle})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		result.Seed = cfg.Seed

		sr := StepResult{Label: label, Result: result}
		if saver != nil {
			if sr.RunID, err = saver.Save(label, cfg.Seed, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
