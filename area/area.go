package area

import (
	"iter"

	"github.com/gamma-delta/aglet/core"
)

// Area is an axis-aligned rectangle of grid cells anchored at its
// top-left corner. The fields are public so external serializers can
// traverse it.
type Area struct {
	Corner        core.Coord
	Width, Height uint32
}

// New constructs an Area.
func New(corner core.Coord, width, height uint32) Area {
	return Area{Corner: corner, Width: width, Height: height}
}

// Len returns the number of coordinates Coords yields: Width×Height.
func (a Area) Len() int {
	return int(a.Width) * int(a.Height)
}

// Coords returns a lazy, restartable sequence of every coordinate in
// the rectangle, row-major starting at the corner: corner+(x,y) for
// x in [0,Width), y in [0,Height).
func (a Area) Coords() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for y := uint32(0); y < a.Height; y++ {
			for x := uint32(0); x < a.Width; x++ {
				if !yield(a.Corner.Add(core.C(x, y))) {
					return
				}
			}
		}
	}
}
