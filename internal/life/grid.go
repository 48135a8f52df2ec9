package life

import "fmt"

// MaxAge is the saturation cap for a cell's age counter.
const MaxAge = 256

// Cell is the age of a cell in generations. Zero means dead.
type Cell uint32

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c > 0 }

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Grid is a toroidal Game of Life board.
type Grid struct {
	width, height int
	cells         []Cell
	next          []Cell
	generation    int
}

// New returns a grid of the given size with every cell dead.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, n),
		next:   make([]Cell, n),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Generation returns the number of ticks since construction or the last Clear.
func (g *Grid) Generation() int { return g.generation }

// Index returns the row-major buffer index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.width + col }

// Wrap maps any coordinate onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.height + g.height) % g.height
	col = (col%g.width + g.width) % g.width
	return row, col
}

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cells exposes the current generation in row-major order. The slice is the
// engine's own buffer and must be treated as read-only; it is replaced on
// every Tick.
func (g *Grid) Cells() []Cell { return g.cells }

// Snapshot returns a copy of the current generation.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Alive reports whether the cell at (row, col) is alive. Out of range
// coordinates are dead.
func (g *Grid) Alive(row, col int) bool {
	return g.Age(row, col) > 0
}

// Age returns the age of the cell at (row, col), or 0 when out of range.
func (g *Grid) Age(row, col int) Cell {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.cells[g.Index(row, col)]
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive() {
			n++
		}
	}
	return n
}

// LiveCoords lists live cells in row-major order.
func (g *Grid) LiveCoords() []Coord {
	out := make([]Coord, 0)
	for i, c := range g.cells {
		if c.Alive() {
			out = append(out, Coord{Row: i / g.width, Col: i % g.width})
		}
	}
	return out
}

// LiveNeighbours counts the live cells among the eight wrapped neighbours of
// idx. Offsets that wrap back onto idx itself are not counted.
func (g *Grid) LiveNeighbours(idx int) int {
	row, col := idx/g.width, idx%g.width
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := g.Wrap(row+dr, col+dc)
			ni := g.Index(nr, nc)
			if ni == idx {
				continue
			}
			if g.cells[ni].Alive() {
				n++
			}
		}
	}
	return n
}

// Rule is the B3/S23 transition: whether a cell is alive in the next
// generation given its current state and live neighbour count.
func Rule(alive bool, neighbours int) bool {
	if alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}

// NextState reports whether the cell at idx is alive in the next generation.
func (g *Grid) NextState(idx int) bool {
	return Rule(g.cells[idx].Alive(), g.LiveNeighbours(idx))
}

// Tick advances the grid by one generation. The next generation is built in
// a separate buffer from the current one and then swapped in.
func (g *Grid) Tick() {
	for i, c := range g.cells {
		if !g.NextState(i) {
			g.next[i] = 0
			continue
		}
		if c < MaxAge {
			c++
		}
		g.next[i] = c
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// ToggleCell flips the cell at (row, col). A cell toggled alive starts at
// age 1. Out of range coordinates are ignored.
func (g *Grid) ToggleCell(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	idx := g.Index(row, col)
	if g.cells[idx].Alive() {
		g.cells[idx] = 0
		return
	}
	g.cells[idx] = 1
}

// SetCells marks every listed cell alive. Dead cells start at age 1 and live
// cells keep their age. If any coordinate is out of range nothing is changed
// and ErrOutOfRange is returned.
func (g *Grid) SetCells(coords []Coord) error {
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, c.Row, c.Col, g.width, g.height)
		}
	}
	for _, c := range coords {
		idx := g.Index(c.Row, c.Col)
		if !g.cells[idx].Alive() {
			g.cells[idx] = 1
		}
	}
	return nil
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
	g.generation = 0
}
