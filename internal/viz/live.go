package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

const (
	historyCapacity = 300
	minTPS          = 1
	maxTPS          = 60
)

type TickMsg time.Time

// Seeder repopulates a cleared grid.
type Seeder func(g *life.Grid) error

// Model drives a grid from a Bubble Tea program.
type Model struct {
	grid      *life.Grid
	seed      Seeder
	name      string
	running   bool
	tps       int
	cursor    life.Coord
	ageColors bool
	theme     int
	history   []float64
	keys      keyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool
	err       error
}

// NewModel wraps g. seed may be nil, in which case reseeding only clears.
func NewModel(g *life.Grid, seed Seeder, name string, tps int) Model {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	prompt := textinput.New()
	prompt.Placeholder = strings.Join(patterns.Names(), ", ")
	prompt.Prompt = "pattern> "
	prompt.CharLimit = 32
	prompt.Width = 40

	m := Model{
		grid:      g,
		seed:      seed,
		name:      name,
		running:   true,
		tps:       tps,
		cursor:    life.Coord{Row: g.Height() / 2, Col: g.Width() / 2},
		ageColors: true,
		history:   make([]float64, 0, historyCapacity),
		keys:      defaultKeyMap(),
		help:      help.New(),
		prompt:    prompt,
	}
	m.record()
	return m
}

// WithTheme selects the named theme. Unknown names leave the current one.
func (m Model) WithTheme(name string) Model {
	for i, t := range themes {
		if t.Name == name {
			m.theme = i
		}
	}
	return m
}

func (m Model) Grid() *life.Grid { return m.grid }
func (m Model) Running() bool    { return m.running }
func (m Model) TPS() int         { return m.tps }
func (m Model) Cursor() life.Coord {
	return m.cursor
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the grid.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if m.running && !m.prompting {
			m.step()
		}
		return m, m.tick()
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.running = !m.running
	case key.Matches(msg, m.keys.Step):
		if !m.running {
			m.step()
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Toggle):
		m.grid.ToggleCell(m.cursor.Row, m.cursor.Col)
	case key.Matches(msg, m.keys.Stamp):
		m.prompting = true
		m.prompt.SetValue("")
		cmd := m.prompt.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		m.grid.Clear()
		m.resetHistory()
	case key.Matches(msg, m.keys.Reseed):
		m.grid.Clear()
		if m.seed != nil {
			m.err = m.seed(m.grid)
		}
		m.resetHistory()
	case key.Matches(msg, m.keys.Faster):
		m.tps = min(m.tps*2, maxTPS)
	case key.Matches(msg, m.keys.Slower):
		m.tps = max(m.tps/2, minTPS)
	case key.Matches(msg, m.keys.Ages):
		m.ageColors = !m.ageColors
	case key.Matches(msg, m.keys.Theme):
		m.theme = (m.theme + 1) % len(themes)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.prompting = false
		m.prompt.Blur()
		m.err = m.stamp(strings.TrimSpace(m.prompt.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// stamp places a named pattern with its top-left corner at the cursor.
func (m *Model) stamp(name string) error {
	p, err := patterns.Get(name)
	if err != nil {
		return err
	}
	return m.grid.SetCells(p.Place(m.cursor.Row, m.cursor.Col, m.grid.Width(), m.grid.Height()))
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row, m.cursor.Col = m.grid.Wrap(m.cursor.Row+dr, m.cursor.Col+dc)
}

func (m *Model) step() {
	m.grid.Tick()
	m.record()
}

func (m *Model) record() {
	m.history = append(m.history, float64(m.grid.Population()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) resetHistory() {
	m.history = m.history[:0]
	m.record()
}

// View renders the grid and the stats panel.
func (m Model) View() string {
	theme := themes[m.theme]
	gridView := gridStyle.Render(RenderGrid(m.grid.Cells(), m.grid.Width(), m.grid.Height(), RenderOptions{
		Theme:      theme,
		AgeColors:  m.ageColors,
		Cursor:     m.cursor,
		ShowCursor: !m.running || m.prompting,
	}))

	var s strings.Builder
	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.grid.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", m.grid.Population())) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", m.grid.Width(), m.grid.Height())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d tps", m.tps)) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("(%d,%d) age %d", m.cursor.Row, m.cursor.Col, m.grid.Age(m.cursor.Row, m.cursor.Col))) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, gridView, statsStyle.Render(s.String()))

	var out strings.Builder
	out.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	out.WriteString(main + "\n")
	if m.prompting {
		out.WriteString(m.prompt.View() + "\n")
	}
	out.WriteString(m.help.View(m.keys))
	return out.String()
}
