// Package aglet is a small kit of geometric primitives for discrete 2D
// grids: games, roguelikes, simulations and cellular automata.
//
// What you get:
//
//   - Integer coordinates and displacement vectors with arithmetic and
//     inter-conversion, on a top-left origin with +y pointing down
//   - Compass directions (4-way, 8-way, and 8-way-plus-center) with
//     rotation, flipping, angles, unit deltas and bitmask sets
//   - A dense grid container with independently present/absent cells
//   - Lazy enumerators for every cell of a rectangle, or just its border
//   - An octant-normalized Bresenham line rasterizer with a configurable
//     endpoint policy
//
// Everything is organized into four subpackages, leaves first:
//
//	core/ — Coord, Vector, Direction4/8/9, Rotation, DirSet
//	grid/ — Grid[T], a dense sparse-friendly container keyed by Coord
//	area/ — Area and Edges rectangle enumerators
//	line/ — the line rasterizer
//
// The library is purely in-memory: no I/O, no goroutines, no locks.
// Every type is a plain value; share a Grid across goroutines only
// under your own synchronization.
//
//	go get github.com/gamma-delta/aglet
package aglet
