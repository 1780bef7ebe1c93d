package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid was passed
	// to an operation that cannot shrug it off.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
