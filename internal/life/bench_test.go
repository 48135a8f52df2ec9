package life

import (
	"math/rand/v2"
	"testing"
)

func benchGrid(b *testing.B, w, h int) *Grid {
	b.Helper()
	g, err := New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewPCG(42, 0))
	for i := range g.cells {
		if r.IntN(3) == 0 {
			g.cells[i] = 1
		}
	}
	return g
}

func BenchmarkTick_150x80(b *testing.B) {
	g := benchGrid(b, 150, 80)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Tick()
	}
}

func BenchmarkTick_512x512(b *testing.B) {
	g := benchGrid(b, 512, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Tick()
	}
}
