package line

import (
	"iter"

	"github.com/gamma-delta/aglet/core"
)

// EndMode selects where a line walk stops relative to its endpoint.
type EndMode uint8

const (
	// StopBefore halts immediately before the endpoint, excluding it.
	// This is the default.
	StopBefore EndMode = iota
	// StopAt halts once the endpoint has been yielded, including it.
	StopAt
	// Never keeps extending the trajectory past the endpoint. The caller
	// must bound the walk externally, e.g. by counting yielded points.
	Never
)

// Iter is a single-pass cursor over the cells of a line. Construct one
// with New; a consumed Iter cannot be rewound, build a fresh one to
// walk the line again.
type Iter struct {
	cursor core.Vector // position in octant-0 space
	deltas core.Vector // octant-0 displacement of the whole segment
	endX   int32       // octant-0 x of the endpoint
	diff   int32       // error accumulator, dy-dx
	oct    octant
	mode   EndMode
}

// Option tunes an Iter during construction.
type Option func(*Iter)

// WithEndMode sets the end mode. The default is StopBefore.
func WithEndMode(m EndMode) Option {
	return func(it *Iter) { it.mode = m }
}

// New builds an iterator over the line from start to end. With the
// default end mode the walk yields start and every intermediate cell
// but not end itself.
func New(start, end core.Coord, opts ...Option) *Iter {
	oct := octantOf(start, end)
	s := oct.toZero(start.ToVector())
	e := oct.toZero(end.ToVector())
	d := e.Sub(s)

	it := &Iter{
		cursor: s,
		deltas: d,
		endX:   e.X,
		diff:   d.Y - d.X,
		oct:    oct,
		mode:   StopBefore,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next yields the next cell on the line. The second return is false
// once the walk is complete: past the endpoint for the finite end
// modes, or off the negative side of the grid (the back-transformed
// point gained a negative component, which a walk between two valid
// Coords never does before its endpoint).
func (it *Iter) Next() (core.Coord, bool) {
	var stop bool
	switch it.mode {
	case StopBefore:
		stop = it.cursor.X >= it.endX
	case StopAt:
		stop = it.cursor.X > it.endX
	case Never:
		stop = false
	}
	if stop {
		return core.Coord{}, false
	}

	out, err := it.oct.fromZero(it.cursor).ToCoord()
	if err != nil {
		return core.Coord{}, false
	}

	if it.diff >= 0 {
		it.cursor.Y++
		it.diff -= it.deltas.X
	}
	it.diff += it.deltas.Y
	it.cursor.X++

	return out, true
}

// Points adapts the iterator to an iter.Seq. Ranging over it drains the
// Iter; like the Iter itself the sequence is single-use.
func (it *Iter) Points() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
