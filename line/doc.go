// Package line rasterizes straight lines between grid coordinates with
// Bresenham's algorithm, normalized through octants so a single
// stepping loop covers every slope and direction.
//
// What:
//
//   - Iter walks unit steps from start towards end, yielding each cell
//     the line passes through. It is lazy, single-pass and cheap to
//     abandon; build a fresh Iter to walk the same line again.
//   - The end mode decides where the walk stops: StopBefore (default)
//     excludes the endpoint, StopAt includes it, Never keeps extending
//     the same trajectory past the endpoint until the caller stops
//     pulling (or the line leaves the unsigned quadrant).
//
// How:
//
// The displacement end-start is classified into one of eight octants.
// Each octant has a fixed linear transform into "octant 0", where the
// line is shallow with non-negative slope (dx ≥ dy ≥ 0), and an inverse
// transform back. The stepping loop then only ever handles that single
// case: advance x every step, carry the dy-dx error accumulator, and
// advance y when it crosses zero. Emitted cursors are mapped back to
// real space through the inverse transform.
//
// A degenerate walk (start == end) is empty under StopBefore, the single
// point under StopAt, and under Never marches to the south-east (the
// zero displacement classifies as octant 0 with a permanently
// non-negative error term).
//
// Complexity: O(1) per yielded coordinate, no allocation after New.
package line
