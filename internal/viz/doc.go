// Package viz provides the terminal live view for a Game of Life grid.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: steps a [life.Grid] on a timer and renders it
//   - [RenderGrid]: packs two grid rows into each terminal line with
//     half-block glyphs
//   - Theme selection with 4 built-in palettes
//
// # Key Bindings
//
//	Space  - Pause/Resume
//	N      - Single step while paused
//	Arrows - Move the cursor (hjkl also work)
//	Enter  - Toggle the cell under the cursor
//	P      - Stamp a named pattern at the cursor
//	C      - Clear the grid
//	R      - Reseed
//	+/-    - Change speed
//	A      - Toggle age colouring
//	T      - Cycle themes
//	?      - Show full help
//
// Live cells are coloured by floor(log2(age)), so long-lived structures
// stand out from fresh growth.
package viz
