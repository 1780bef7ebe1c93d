package grid

import (
	"iter"

	"github.com/gamma-delta/aglet/core"
)

// slot is one cell of backing storage. ok distinguishes a stored zero
// value from an empty cell.
type slot[T any] struct {
	val T
	ok  bool
}

// Grid is a dense, fixed-size 2D container keyed by core.Coord. Every
// slot starts empty. The grid owns the values it stores; Insert and
// Remove hand the previous occupant back to the caller.
type Grid[T any] struct {
	width, height uint32
	cells         []slot[T]
}

// New creates a width×height grid with all slots empty.
// Complexity: O(W×H) for the backing allocation.
func New[T any](width, height uint32) *Grid[T] {
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]slot[T], int(width)*int(height)),
	}
}

// Width returns the grid's width in cells.
func (g *Grid[T]) Width() uint32 { return g.width }

// Height returns the grid's height in cells.
func (g *Grid[T]) Height() uint32 { return g.height }

// idx maps c to its row-major index, reporting whether c is in range.
func (g *Grid[T]) idx(c core.Coord) (int, bool) {
	if c.X >= g.width || c.Y >= g.height {
		return 0, false
	}
	return int(c.Index(g.width)), true
}

// coordOf recovers the coordinate of a row-major index.
func (g *Grid[T]) coordOf(i int) core.Coord {
	return core.C(uint32(i)%g.width, uint32(i)/g.width)
}

// Get returns a pointer to the value stored at c. The second return is
// false when c is out of range or the slot is empty; the two cases are
// deliberately indistinguishable here, use Contains plus bounds checks
// to discriminate. The pointer stays valid until the value is removed
// or overwritten.
// Complexity: O(1).
func (g *Grid[T]) Get(c core.Coord) (*T, bool) {
	i, ok := g.idx(c)
	if !ok || !g.cells[i].ok {
		return nil, false
	}
	return &g.cells[i].val, true
}

// Insert stores val at c and returns the previous occupant, if any.
// Inserting out of range is a silent no-op returning the zero value and
// false.
// Complexity: O(1).
func (g *Grid[T]) Insert(c core.Coord, val T) (T, bool) {
	i, ok := g.idx(c)
	if !ok {
		var zero T
		return zero, false
	}
	prev := g.cells[i]
	g.cells[i] = slot[T]{val: val, ok: true}
	return prev.val, prev.ok
}

// Remove empties the slot at c and returns the value it held, if any.
// Removing out of range is a silent no-op returning the zero value and
// false.
// Complexity: O(1).
func (g *Grid[T]) Remove(c core.Coord) (T, bool) {
	i, ok := g.idx(c)
	if !ok {
		var zero T
		return zero, false
	}
	prev := g.cells[i]
	g.cells[i] = slot[T]{}
	return prev.val, prev.ok
}

// GetOrInsert returns a pointer to the value at c, storing fallback
// first if the slot is empty.
// Returns ErrOutOfBounds if c is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) GetOrInsert(c core.Coord, fallback T) (*T, error) {
	return g.GetOrInsertWith(c, func() T { return fallback })
}

// GetOrInsertWith returns a pointer to the value at c, computing and
// storing fallback() first if the slot is empty. fallback is only
// called when a value is actually inserted.
// Returns ErrOutOfBounds if c is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) GetOrInsertWith(c core.Coord, fallback func() T) (*T, error) {
	i, ok := g.idx(c)
	if !ok {
		return nil, ErrOutOfBounds
	}
	if !g.cells[i].ok {
		g.cells[i] = slot[T]{val: fallback(), ok: true}
	}
	return &g.cells[i].val, nil
}

// Contains reports whether c is in range and its slot is occupied.
// Complexity: O(1).
func (g *Grid[T]) Contains(c core.Coord) bool {
	i, ok := g.idx(c)
	return ok && g.cells[i].ok
}

// All iterates the occupied cells in row-major order, yielding each
// coordinate with a copy of its value.
func (g *Grid[T]) All() iter.Seq2[core.Coord, T] {
	return func(yield func(core.Coord, T) bool) {
		for i := range g.cells {
			if !g.cells[i].ok {
				continue
			}
			if !yield(g.coordOf(i), g.cells[i].val) {
				return
			}
		}
	}
}

// Mut iterates the occupied cells in row-major order, yielding each
// coordinate with a pointer to its value so callers can update in
// place. Inserting or removing cells during iteration is not supported.
func (g *Grid[T]) Mut() iter.Seq2[core.Coord, *T] {
	return func(yield func(core.Coord, *T) bool) {
		for i := range g.cells {
			if !g.cells[i].ok {
				continue
			}
			if !yield(g.coordOf(i), &g.cells[i].val) {
				return
			}
		}
	}
}

// Drain iterates the occupied cells in row-major order, transferring
// ownership: each yielded slot is emptied before its value is handed
// to the caller. Cells never reached, because the caller stopped early,
// stay in the grid.
func (g *Grid[T]) Drain() iter.Seq2[core.Coord, T] {
	return func(yield func(core.Coord, T) bool) {
		for i := range g.cells {
			if !g.cells[i].ok {
				continue
			}
			v := g.cells[i].val
			g.cells[i] = slot[T]{}
			if !yield(g.coordOf(i), v) {
				return
			}
		}
	}
}
