// Package area provides lazy enumerators for axis-aligned rectangles:
// Area yields every contained coordinate, Edges yields only the
// perimeter.
//
// What:
//
//   - Area(corner, w, h): all w×h coordinates, row-major from the
//     corner.
//   - Edges(corner, w, h): the border ring, clockwise from the corner —
//     top edge rightward, right edge downward, bottom edge leftward,
//     left edge upward, visiting each corner exactly once.
//   - Both expose Len, the exact number of coordinates the sequence
//     yields, so callers can pre-size collections.
//
// Both enumerators are iter.Seq values: lazy, restartable (ranging
// again replays the identical sequence) and abandonable at any point
// with nothing to clean up.
//
// Degenerate rectangles are well-defined: a 1×n or n×1 Edges is the
// straight line itself, a 1×1 Edges is the single corner, and a zero
// width or height yields nothing.
//
// Complexity: O(1) per yielded coordinate, no allocation.
package area
