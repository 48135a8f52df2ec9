// Package export renders grids and run data as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/viz"
)

// GridToSVG draws one square of side scale per live cell, coloured by age
// with the theme's palette.
func GridToSVG(width, height int, cells []life.Cell, scale int, theme viz.Theme) (string, error) {
	if len(cells) != width*height {
		return "", fmt.Errorf("export: %d cells for %dx%d grid", len(cells), width, height)
	}
	if scale <= 0 {
		scale = 1
	}

	w, h := width*scale, height*scale
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, theme.Dead)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := cells[row*width+col]
			if !c.Alive() {
				continue
			}
			fill := theme.Alive
			if len(theme.Ages) > 0 {
				fill = theme.Ages[viz.AgeBucket(c, len(theme.Ages))]
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, col*scale, row*scale, scale, scale, fill)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// PopulationToSVG plots population against generation as a single path.
func PopulationToSVG(pops []int, width, height int, strokeColor string) string {
	if len(pops) < 2 {
		return ""
	}

	lo, hi := pops[0], pops[0]
	for _, p := range pops {
		lo = min(lo, p)
		hi = max(hi, p)
	}

	// 10% headroom above and below.
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	minY := float64(lo) - span*0.1
	rangeY := span * 1.2
	rangeX := float64(len(pops) - 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range pops {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (float64(p)-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}
