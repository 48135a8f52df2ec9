package gui

import (
	"image/color"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/viz"
)

// Palette maps cell state to pixel colours. Ages holds one colour per power
// of two of age; when empty every live cell uses Alive.
type Palette struct {
	Dead  color.RGBA
	Alive color.RGBA
	Ages  []color.RGBA
}

// DefaultPalette fades from white through yellow to dark red as cells age.
func DefaultPalette() Palette {
	return Palette{
		Dead:  color.RGBA{0x11, 0x11, 0x11, 0xff},
		Alive: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Ages: []color.RGBA{
			{0xff, 0xff, 0xff, 0xff},
			{0xff, 0xf3, 0xb0, 0xff},
			{0xff, 0xe0, 0x66, 0xff},
			{0xff, 0xc1, 0x45, 0xff},
			{0xff, 0x9f, 0x1c, 0xff},
			{0xf7, 0x7f, 0x00, 0xff},
			{0xe8, 0x5d, 0x04, 0xff},
			{0xd0, 0x00, 0x00, 0xff},
			{0x9d, 0x02, 0x08, 0xff},
		},
	}
}

// Color returns the pixel colour of a single cell.
func (p Palette) Color(c life.Cell) color.RGBA {
	if !c.Alive() {
		return p.Dead
	}
	if len(p.Ages) == 0 {
		return p.Alive
	}
	return p.Ages[viz.AgeBucket(c, len(p.Ages))]
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold
// 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []life.Cell, p Palette) {
	for i, c := range cells {
		col := p.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// CellAt converts a pixel position in the scaled window to a grid
// coordinate. ok is false outside the grid.
func CellAt(x, y, scale, width, height int) (life.Coord, bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return life.Coord{}, false
	}
	row, col := y/scale, x/scale
	if row >= height || col >= width {
		return life.Coord{}, false
	}
	return life.Coord{Row: row, Col: col}, true
}
