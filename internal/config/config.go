package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 150
	DefaultHeight      = 80
	DefaultGenerations = 200
	DefaultDensity     = 0.25
	DefaultTPS         = 5
	DefaultDataDir     = ".lifesim"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Generations int          `yaml:"generations"`
	Pattern     string       `yaml:"pattern"`
	PatternFile string       `yaml:"pattern_file"`
	Offset      OffsetConfig `yaml:"offset"`
	Density     float64      `yaml:"density"`
	Seed        int64        `yaml:"seed"`
	TPS         int          `yaml:"tps"`
	StopOnCycle bool         `yaml:"stop_on_cycle"`
	DataDir     string       `yaml:"data_dir"`
}

// OffsetConfig positions a pattern on the grid. When Center is set the
// pattern is centred and Row/Col are ignored.
type OffsetConfig struct {
	Center bool `yaml:"center"`
	Row    int  `yaml:"row"`
	Col    int  `yaml:"col"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Generations: DefaultGenerations,
		Pattern:     "random",
		Offset:      OffsetConfig{Center: true},
		Density:     DefaultDensity,
		TPS:         DefaultTPS,
		StopOnCycle: true,
		DataDir:     DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over a copy of base. Keys absent from the file
// keep base's values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cp := *base
	cfg := &cp
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first field that cannot drive a run.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Generations <= 0:
		return fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidConfig, c.Generations)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be in [0,1], got %g", ErrInvalidConfig, c.Density)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Pattern == "" && c.PatternFile == "":
		return fmt.Errorf("%w: pattern or pattern_file is required", ErrInvalidConfig)
	}
	return nil
}
