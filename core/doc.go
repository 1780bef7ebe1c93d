// Package core defines the fundamental value types for discrete 2D grid
// geometry: unsigned coordinates, signed displacement vectors, compass
// directions and direction sets.
//
// What:
//
//   - Coord: an unsigned cell position with origin at the top-left,
//     x growing rightwards and y growing downwards.
//   - Vector: a signed displacement, or a position that may have wandered
//     off the negative side of the grid.
//   - Direction4 / Direction8 / Direction9: compass enumerations in
//     clockwise declaration order, with rotation, flipping, angle and
//     unit-delta lookups.
//   - DirSet: a bitmask set over a direction enumeration.
//
// Why:
//
//   - Games and simulations: tile positions, movement deltas, facing.
//   - Cellular automata: neighborhood enumeration (von Neumann / Moore).
//   - Any row-major 2D storage: Coord.Index gives the flat index.
//
// Conventions:
//
//   - North is negative y (screen convention, +y is down).
//   - All rotations treat positive steps as clockwise; negative steps
//     rotate counter-clockwise and may exceed a full turn in either
//     direction (floored modulo).
//   - Coord arithmetic never checks bounds; converting a Vector back to
//     a Coord is the single place where negativity is detected.
//
// Errors:
//
//   - ErrNegativeCoord: a Vector with a negative component was converted
//     to a Coord.
//   - ErrCenterDirection: Dir9Center was converted to a Direction8.
//
// All arithmetic, rotation and conversion operations are O(1); the
// Coord neighbor enumerations allocate their result slice.
package core
