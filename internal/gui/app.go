//go:build ebiten

package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/logging"
)

// Game adapts a grid to the ebiten.Game interface. One Update is one
// generation, so the window speed is the ebiten tick rate.
type Game struct {
	grid     *life.Grid
	opts     Options
	img      *ebiten.Image
	buf      []byte
	paused   bool
	tickOnce bool
	overlay  bool
	err      error
}

// New constructs a Game for the provided grid.
func New(g *life.Grid, opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		grid:    g,
		opts:    opts,
		img:     ebiten.NewImage(g.Width(), g.Height()),
		buf:     make([]byte, 4*g.Width()*g.Height()),
		overlay: true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *life.Grid, opts Options) error {
	game := New(g, opts)
	ebiten.SetWindowTitle(game.opts.Title)
	ebiten.SetWindowSize(g.Width()*game.opts.Scale, g.Height()*game.opts.Scale)
	ebiten.SetTPS(game.opts.TPS)
	logging.Logger().Info("gui started",
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.Int("tps", game.opts.TPS))
	return ebiten.RunGame(game)
}

// Update handles input and advances the grid.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Clear()
		if g.opts.Reseed != nil {
			g.err = g.opts.Reseed(g.grid)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay = !g.overlay
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if c, ok := CellAt(x, y, g.opts.Scale, g.grid.Width(), g.grid.Height()); ok {
			g.grid.ToggleCell(c.Row, c.Col)
		}
	}

	if !g.paused || g.tickOnce {
		g.grid.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	FillRGBA(g.buf, g.grid.Cells(), g.opts.Palette)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)

	if g.overlay {
		msg := fmt.Sprintf("gen %d  pop %d  tps %.0f", g.grid.Generation(), g.grid.Population(), ebiten.ActualTPS())
		if g.paused {
			msg += "  [paused]"
		}
		if g.err != nil {
			msg += "\n" + g.err.Error()
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.opts.Scale, g.grid.Height() * g.opts.Scale
}
