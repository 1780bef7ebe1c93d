package area

import (
	"iter"

	"github.com/gamma-delta/aglet/core"
)

// Edges is the border ring of an axis-aligned rectangle. Same shape as
// Area, but its enumerator visits only the perimeter.
type Edges struct {
	Corner        core.Coord
	Width, Height uint32
}

// NewEdges constructs an Edges.
func NewEdges(corner core.Coord, width, height uint32) Edges {
	return Edges{Corner: corner, Width: width, Height: height}
}

// Len returns the number of coordinates Coords yields:
// 2W+2H-4 for a proper rectangle, W×H when either dimension is 1
// (the ring collapses to a line or a point), 0 when either is 0.
func (e Edges) Len() int {
	if e.Width <= 1 || e.Height <= 1 {
		return int(e.Width) * int(e.Height)
	}
	return 2*int(e.Width) + 2*int(e.Height) - 4
}

// Coords returns a lazy, restartable sequence of the perimeter
// coordinates, clockwise from the corner: the top edge rightward, the
// right edge downward, the bottom edge leftward and the left edge
// upward, each corner visited exactly once.
func (e Edges) Coords() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		w, h := e.Width, e.Height
		if w == 0 || h == 0 {
			return
		}
		if w == 1 || h == 1 {
			// The ring degenerates to the rectangle itself.
			for c := range New(e.Corner, w, h).Coords() {
				if !yield(c) {
					return
				}
			}
			return
		}
		for x := uint32(0); x < w; x++ { // top, leftmost corner first
			if !yield(e.Corner.Add(core.C(x, 0))) {
				return
			}
		}
		for y := uint32(1); y < h; y++ { // right
			if !yield(e.Corner.Add(core.C(w-1, y))) {
				return
			}
		}
		for x := w - 2; ; x-- { // bottom, leftward
			if !yield(e.Corner.Add(core.C(x, h-1))) {
				return
			}
			if x == 0 {
				break
			}
		}
		for y := h - 2; y >= 1; y-- { // left, upward
			if !yield(e.Corner.Add(core.C(0, y))) {
				return
			}
		}
	}
}
