package patterns

import (
	"math/rand/v2"

	"github.com/san-kum/lifesim/internal/life"
)

// Random returns a soup where each cell is alive with probability density.
// The same seed always yields the same soup.
func Random(width, height int, density float64, seed int64) []life.Coord {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	out := make([]life.Coord, 0, int(float64(width*height)*density)+1)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if r.Float64() < density {
				out = append(out, life.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}
