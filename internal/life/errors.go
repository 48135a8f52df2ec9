package life

import "errors"

// Domain errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("life: width and height must be positive")

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")
)
