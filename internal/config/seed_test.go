package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func TestPopulate_NamedPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Pattern = "glider"
	cfg.Offset = OffsetConfig{Row: 9, Col: 9}

	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Populate(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 5 {
		t.Errorf("expected 5 live cells, got %d", g.Population())
	}
	if !g.Alive(9, 0) {
		t.Error("pattern should wrap across the edge")
	}
}

func TestPopulate_Centered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 9, 9
	cfg.Pattern = "blinker"

	g, _ := cfg.NewGrid()
	if err := cfg.Populate(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 3 || !g.Alive(4, 4) {
		t.Errorf("blinker not centred: %v", g.LiveCoords())
	}
}

func TestPopulate_RandomDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.Seed = 7

	a, _ := cfg.NewGrid()
	b, _ := cfg.NewGrid()
	if err := cfg.Populate(a); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Populate(b); err != nil {
		t.Fatal(err)
	}
	if a.Population() == 0 {
		t.Fatal("random soup is empty")
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("same seed produced different soups at %d", i)
		}
	}
}

func TestPopulate_PatternTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Pattern = "pulsar"

	g, _ := life.New(5, 5)
	if err := cfg.Populate(g); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPopulate_PatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.cells")
	if err := os.WriteFile(path, []byte("!Name: block\nOO\nOO\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 6, 6
	cfg.PatternFile = path

	g, _ := cfg.NewGrid()
	if err := cfg.Populate(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 4 {
		t.Errorf("expected block, got %v", g.LiveCoords())
	}
	if cfg.Label() != "block" {
		t.Errorf("label = %q", cfg.Label())
	}
}

func TestPopulate_UnknownPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "nope"
	g, _ := cfg.NewGrid()
	if err := cfg.Populate(g); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestPresetsPopulate(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset invalid: %v", err)
			}
			g, err := cfg.NewGrid()
			if err != nil {
				t.Fatal(err)
			}
			if err := cfg.Populate(g); err != nil {
				t.Fatal(err)
			}
			if g.Population() == 0 {
				t.Error("preset produced an empty grid")
			}
		})
	}
}
