package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
)

func parsed(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addGridFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(parsed(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != config.DefaultWidth || cfg.Height != config.DefaultHeight {
		t.Errorf("expected default size, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed == 0 {
		t.Error("seed should be picked when unset")
	}
}

func TestResolveConfig_FlagsOverridePreset(t *testing.T) {
	cfg, err := resolveConfig(parsed(t, "--preset", "pulsar", "--generations", "9"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pattern != "pulsar" || cfg.Width != 25 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Generations != 9 {
		t.Errorf("generations = %d, want 9", cfg.Generations)
	}
}

func TestResolveConfig_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("width: 20\nheight: 10\ngenerations: 5\npattern: blinker\ntps: 3\nseed: 11\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(parsed(t, "--config", path, "--width", "30"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Height != 10 || cfg.Pattern != "blinker" || cfg.Seed != 11 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestResolveConfig_ConfigFileOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("generations: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(parsed(t, "--preset", "pulsar", "--config", path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pattern != "pulsar" || cfg.Width != 25 || cfg.Height != 25 || !cfg.StopOnCycle {
		t.Errorf("preset lost under config file: %+v", cfg)
	}
	if cfg.Generations != 7 {
		t.Errorf("generations = %d, want 7", cfg.Generations)
	}
}

func TestResolveConfig_OffsetDisablesCentering(t *testing.T) {
	cfg, err := resolveConfig(parsed(t, "--pattern", "glider", "--row", "3"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Offset.Center || cfg.Offset.Row != 3 {
		t.Errorf("unexpected offset %+v", cfg.Offset)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	if _, err := resolveConfig(parsed(t, "--preset", "nope")); err == nil {
		t.Error("expected unknown preset error")
	}
	if _, err := resolveConfig(parsed(t, "--density", "2")); err == nil {
		t.Error("expected validation error")
	}
}
