//go:build !ebiten

package gui

import "github.com/san-kum/lifesim/internal/life"

// Run reports that the window is unavailable in this build.
func Run(*life.Grid, Options) error {
	return ErrUnavailable
}
