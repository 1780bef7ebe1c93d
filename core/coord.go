package core

import "fmt"

// Coord is an unsigned cell position in a grid whose origin is the
// top-left corner, with x increasing rightwards and y increasing
// downwards. It is an immutable value type; arithmetic returns copies.
type Coord struct {
	X, Y uint32
}

// ZeroCoord is the origin, (0, 0).
var ZeroCoord = Coord{}

// C constructs a Coord from its components.
func C(x, y uint32) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of c and o.
// The caller must ensure o's components do not exceed c's.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Mul returns c scaled by s in both components.
func (c Coord) Mul(s uint32) Coord {
	return Coord{X: c.X * s, Y: c.Y * s}
}

// MulCoord returns the component-wise (Hadamard) product of c and o.
func (c Coord) MulCoord(o Coord) Coord {
	return Coord{X: c.X * o.X, Y: c.Y * o.Y}
}

// Index maps c to its row-major index in a grid of the given width,
// y*width + x. No bounds check is performed; callers must ensure
// c.X < width. Bounds checking lives in the grid package.
// Complexity: O(1).
func (c Coord) Index(width uint32) uint32 {
	return c.Y*width + c.X
}

// ToVector widens c to a signed Vector. The conversion always succeeds.
func (c Coord) ToVector() Vector {
	return Vector{X: int32(c.X), Y: int32(c.Y)}
}

// Neighbors4 returns c's orthogonal neighbors in clockwise order
// starting with the cell to the north. Neighbors that would fall off
// the negative side of the grid are silently skipped, so the result
// holds 2 cells at the origin, 3 along either zero axis, 4 otherwise.
func (c Coord) Neighbors4() []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions4 {
		n, err := c.ToVector().Add(d.Deltas()).ToCoord()
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Neighbors8 returns c's orthogonal and diagonal neighbors in clockwise
// order starting with the cell to the north. Neighbors that would fall
// off the negative side of the grid are silently skipped, so the result
// holds 3 cells at the origin, 5 along either zero axis, 8 otherwise.
func (c Coord) Neighbors8() []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range Directions8 {
		n, err := c.ToVector().Add(d.Deltas()).ToCoord()
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// String renders c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
