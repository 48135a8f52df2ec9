package config

import "sort"

var Presets = map[string]*Config{
	"glider": {
		Width: 6, Height: 6, Generations: 24, Pattern: "glider",
		Offset: OffsetConfig{Row: 0, Col: 0}, TPS: 5,
	},
	"gun": {
		Width: 80, Height: 40, Generations: 600, Pattern: "glider_gun",
		Offset: OffsetConfig{Row: 2, Col: 2}, TPS: 20,
	},
	"pulsar": {
		Width: 25, Height: 25, Generations: 30, Pattern: "pulsar",
		Offset: OffsetConfig{Center: true}, TPS: 5, StopOnCycle: true,
	},
	"methuselah": {
		Width: 200, Height: 120, Generations: 1500, Pattern: "r_pentomino",
		Offset: OffsetConfig{Center: true}, TPS: 30, StopOnCycle: true,
	},
	"acorn": {
		Width: 220, Height: 140, Generations: 5500, Pattern: "acorn",
		Offset: OffsetConfig{Center: true}, TPS: 60, StopOnCycle: true,
	},
	"soup": {
		Width: DefaultWidth, Height: DefaultHeight, Generations: 1000, Pattern: "random",
		Density: 0.3, Seed: 42, TPS: 10, StopOnCycle: true,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled from
// DefaultConfig, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.TPS == 0 {
		cfg.TPS = DefaultTPS
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
