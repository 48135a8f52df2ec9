package config

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

// RandomPattern selects a random soup instead of a named pattern.
const RandomPattern = "random"

// NewGrid allocates a dead grid of the configured size.
func (c *Config) NewGrid() (*life.Grid, error) {
	return life.New(c.Width, c.Height)
}

// ResolvePattern returns the pattern the config names. PatternFile wins
// over Pattern. ok is false for random soups.
func (c *Config) ResolvePattern() (p patterns.Pattern, ok bool, err error) {
	switch {
	case c.PatternFile != "":
		p, err = patterns.Load(c.PatternFile)
		return p, err == nil, err
	case c.Pattern == RandomPattern:
		return patterns.Pattern{}, false, nil
	default:
		p, err = patterns.Get(c.Pattern)
		return p, err == nil, err
	}
}

// Populate seeds g with the configured pattern or soup.
func (c *Config) Populate(g *life.Grid) error {
	p, ok, err := c.ResolvePattern()
	if err != nil {
		return err
	}
	if !ok {
		return g.SetCells(patterns.Random(g.Width(), g.Height(), c.Density, c.Seed))
	}
	if p.Width > g.Width() || p.Height > g.Height() {
		return fmt.Errorf("%w: pattern %s is %dx%d, grid is %dx%d",
			ErrInvalidConfig, p.Name, p.Width, p.Height, g.Width(), g.Height())
	}
	row, col := c.Offset.Row, c.Offset.Col
	if c.Offset.Center {
		row, col = p.Centered(g.Width(), g.Height())
	}
	return g.SetCells(p.Place(row, col, g.Width(), g.Height()))
}

// Label names the run for storage and display.
func (c *Config) Label() string {
	if c.PatternFile != "" {
		if p, err := patterns.Load(c.PatternFile); err == nil && p.Name != "" {
			return p.Name
		}
	}
	return c.Pattern
}
