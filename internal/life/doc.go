// Package life implements the Game of Life grid engine.
//
// A [Grid] is a fixed-size toroidal surface of [Cell] values stored in
// row-major order. Each cell encodes both its state and its age in a single
// counter:
//
//   - 0 means dead
//   - n > 0 means alive for n consecutive generations, saturating at [MaxAge]
//
// # Update rule
//
// [Grid.Tick] computes every cell of the next generation from the current
// one and then publishes the whole generation at once. A live cell survives
// with two or three live neighbours, a dead cell is born with exactly three,
// everything else is dead.
//
// # Example
//
//	g, _ := life.New(6, 6)
//	_ = g.SetCells([]life.Coord{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})
//	g.Tick()
//	cells := g.Cells()
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. A grid has a single owner which must
// serialise all access to it.
package life
