package viz

import (
	"math/bits"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifesim/internal/life"
)

const halfBlock = "▀"

// RenderOptions controls how RenderGrid colours cells.
type RenderOptions struct {
	Theme     Theme
	AgeColors bool
	// Cursor is highlighted when ShowCursor is set.
	Cursor     life.Coord
	ShowCursor bool
}

// RenderGrid draws a row-major cell buffer. Each terminal line holds two
// grid rows: the upper half block takes the top row's colour as foreground
// and the bottom row's colour as background. An odd last row is paired
// with dead cells.
func RenderGrid(cells []life.Cell, width, height int, opts RenderOptions) string {
	if len(cells) != width*height {
		return ""
	}

	styles := make(map[[2]lipgloss.Color]lipgloss.Style)
	var b strings.Builder
	for row := 0; row < height; row += 2 {
		for col := 0; col < width; col++ {
			top := cellColor(cells, width, height, row, col, opts)
			bottom := opts.Theme.Dead
			if row+1 < height {
				bottom = cellColor(cells, width, height, row+1, col, opts)
			}
			pair := [2]lipgloss.Color{top, bottom}
			st, ok := styles[pair]
			if !ok {
				st = lipgloss.NewStyle().Foreground(top).Background(bottom)
				styles[pair] = st
			}
			b.WriteString(st.Render(halfBlock))
		}
		if row+2 < height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellColor(cells []life.Cell, width, height, row, col int, opts RenderOptions) lipgloss.Color {
	if opts.ShowCursor && opts.Cursor.Row == row && opts.Cursor.Col == col {
		return opts.Theme.Cursor
	}
	c := cells[row*width+col]
	if !c.Alive() {
		return opts.Theme.Dead
	}
	if !opts.AgeColors || len(opts.Theme.Ages) == 0 {
		return opts.Theme.Alive
	}
	return opts.Theme.Ages[AgeBucket(c, len(opts.Theme.Ages))]
}

// AgeBucket maps an age to floor(log2(age)), clamped to [0, n).
func AgeBucket(c life.Cell, n int) int {
	if c == 0 || n <= 0 {
		return 0
	}
	idx := bits.Len32(uint32(c)) - 1
	if idx >= n {
		idx = n - 1
	}
	return idx
}
