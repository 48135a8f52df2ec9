package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lifesim/internal/life"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	g, err := life.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(g, nil, "test", 5)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModel_PauseAndStep(t *testing.T) {
	m := newTestModel(t, 8, 8)
	if !m.Running() {
		t.Fatal("model should start running")
	}

	m = press(m, keySpace)
	if m.Running() {
		t.Fatal("space should pause")
	}

	m = press(m, runes("n"), runes("n"))
	if m.Grid().Generation() != 2 {
		t.Errorf("expected generation 2 after two steps, got %d", m.Grid().Generation())
	}
}

func TestModel_StepIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, 8, 8)
	m = press(m, runes("n"))
	if m.Grid().Generation() != 0 {
		t.Errorf("step while running advanced the grid to %d", m.Grid().Generation())
	}
}

func TestModel_TickMsg(t *testing.T) {
	m := newTestModel(t, 8, 8)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if m.Grid().Generation() != 1 {
		t.Errorf("expected generation 1, got %d", m.Grid().Generation())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m = press(m, keySpace)
	next, _ = m.Update(TickMsg{})
	if next.(Model).Grid().Generation() != 1 {
		t.Error("paused model advanced on tick")
	}
}

func TestModel_CursorWrapsAndToggles(t *testing.T) {
	m := newTestModel(t, 4, 4)
	m = press(m, keySpace)
	start := m.Cursor()

	m = press(m, keyUp, keyUp, keyUp, keyUp)
	if m.Cursor() != start {
		t.Errorf("cursor %v after a full lap, want %v", m.Cursor(), start)
	}

	m = press(m, keyLeft, keyLeft, keyLeft)
	want := life.Coord{Row: start.Row, Col: (start.Col + 1) % 4}
	if m.Cursor() != want {
		t.Errorf("cursor %v, want %v", m.Cursor(), want)
	}

	m = press(m, keyEnter)
	if !m.Grid().Alive(want.Row, want.Col) {
		t.Error("enter should toggle the cell under the cursor")
	}
}

func TestModel_Clear(t *testing.T) {
	m := newTestModel(t, 6, 6)
	m = press(m, keySpace, keyEnter, runes("c"))
	if m.Grid().Population() != 0 {
		t.Errorf("clear left %d cells", m.Grid().Population())
	}
}

func TestModel_StampPattern(t *testing.T) {
	m := newTestModel(t, 20, 20)
	m = press(m, keySpace, runes("p"), runes("glider"), keyEnter)

	if m.Grid().Population() != 5 {
		t.Errorf("expected glider population 5, got %d", m.Grid().Population())
	}
	if m.err != nil {
		t.Errorf("unexpected error %v", m.err)
	}
}

func TestModel_StampUnknownPattern(t *testing.T) {
	m := newTestModel(t, 20, 20)
	m = press(m, keySpace, runes("p"), runes("nope"), keyEnter)

	if m.Grid().Population() != 0 {
		t.Error("unknown pattern changed the grid")
	}
	if m.err == nil {
		t.Error("expected an error for unknown pattern")
	}
}

func TestModel_StampCancel(t *testing.T) {
	m := newTestModel(t, 20, 20)
	m = press(m, keySpace, runes("p"), runes("glider"), keyEsc, keyEnter)

	if m.Grid().Population() != 1 {
		t.Errorf("expected only the toggled cell, got %d", m.Grid().Population())
	}
}

func TestModel_Reseed(t *testing.T) {
	g, _ := life.New(10, 10)
	calls := 0
	m := NewModel(g, func(g *life.Grid) error {
		calls++
		return g.SetCells([]life.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	}, "test", 5)

	m = press(m, runes("r"))
	if calls != 1 || m.Grid().Population() != 2 {
		t.Errorf("reseed calls=%d population=%d", calls, m.Grid().Population())
	}
}

func TestModel_Speed(t *testing.T) {
	m := newTestModel(t, 4, 4)
	m = press(m, runes("+"))
	if m.TPS() != 10 {
		t.Errorf("expected 10 tps, got %d", m.TPS())
	}
	m = press(m, runes("-"), runes("-"), runes("-"), runes("-"))
	if m.TPS() != minTPS {
		t.Errorf("expected %d tps, got %d", minTPS, m.TPS())
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, 6, 6).WithTheme("ocean")
	view := m.View()
	for _, want := range []string{"TEST", "Generation", "Population", "ocean"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 4, 4)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
