// Package gui shows a grid in a desktop window. The window is only
// available when built with the ebiten tag.
package gui

import (
	"errors"

	"github.com/san-kum/lifesim/internal/life"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: built without the ebiten tag")

// Options configures the window.
type Options struct {
	Title   string
	Scale   int
	TPS     int
	Palette Palette
	// Reseed repopulates the grid after a clear. May be nil.
	Reseed func(g *life.Grid) error
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "lifesim"
	}
	if o.Scale <= 0 {
		o.Scale = 6
	}
	if o.TPS <= 0 {
		o.TPS = 10
	}
	if o.Palette.Alive.A == 0 {
		o.Palette = DefaultPalette()
	}
	return o
}
