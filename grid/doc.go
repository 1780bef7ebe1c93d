// Package grid provides Grid, a dense 2D container keyed by core.Coord
// in which every cell is independently present or absent. It behaves
// like a map[core.Coord]T but with contiguous row-major storage.
//
// What:
//
//   - New creates a fixed-size grid with every slot empty; grids never
//     resize.
//   - Get / Insert / Remove access single cells; out-of-range reads
//     collapse to "not found" and out-of-range inserts are silent no-ops,
//     so boundary-unaware callers need no pre-checks.
//   - Contains is the only way to tell in-range-but-empty apart from
//     out-of-range without risking a no-op write.
//   - GetOrInsert / GetOrInsertWith return a pointer to the existing or
//     freshly stored value; these DO report out-of-range coordinates as
//     ErrOutOfBounds, since silently handing back a pointer to nothing
//     has no sensible meaning.
//   - All / Mut / Drain iterate the occupied cells in row-major order.
//
// Why:
//
//   - Tile maps and board state: dense storage, sparse occupancy.
//   - Cellular automata: O(1) cell access keyed by Coord.
//
// Complexity:
//
//   - All single-cell operations: O(1).
//   - Iteration: O(W×H) over the backing slice, yielding only occupied
//     cells.
//
// Errors:
//
//   - ErrOutOfBounds: GetOrInsert / GetOrInsertWith called with a
//     coordinate outside [0,W)×[0,H).
//
// Grid does no internal locking; share one across goroutines only under
// the caller's own synchronization.
package grid
