package core

import "errors"

// Sentinel errors for core conversions.
var (
	// ErrNegativeCoord indicates a Vector with a negative component was
	// converted to a Coord.
	ErrNegativeCoord = errors.New("core: vector has a negative component")

	// ErrCenterDirection indicates Dir9Center was converted to a
	// Direction8, which has no center.
	ErrCenterDirection = errors.New("core: center direction has no eight-way equivalent")
)
