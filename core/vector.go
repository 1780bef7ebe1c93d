package core

import (
	"fmt"
	"math"
)

// Vector is a signed displacement between cells, or a cell position that
// may legitimately sit outside the unsigned grid on the negative side.
// It is an immutable value type; arithmetic returns copies.
type Vector struct {
	X, Y int32
}

// V constructs a Vector from its components.
func V(x, y int32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s in both components.
func (v Vector) Mul(s int32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// MulVector returns the component-wise (Hadamard) product of v and o.
func (v Vector) MulVector(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y}
}

// ToCoord narrows v to an unsigned Coord.
// Returns ErrNegativeCoord if either component is negative.
func (v Vector) ToCoord() (Coord, error) {
	if v.X < 0 || v.Y < 0 {
		return Coord{}, ErrNegativeCoord
	}
	return Coord{X: uint32(v.X), Y: uint32(v.Y)}, nil
}

// Quadrant reports which quadrant v lies in:
//
//	1: +x, +y
//	2: -x, +y
//	3: -x, -y
//	4: +x, -y
//
// Zero components count as positive.
func (v Vector) Quadrant() int {
	switch {
	case v.X >= 0 && v.Y >= 0:
		return 1
	case v.X < 0 && v.Y >= 0:
		return 2
	case v.X < 0 && v.Y < 0:
		return 3
	default:
		return 4
	}
}

// Neighbors4 returns the four orthogonally adjacent vectors in clockwise
// order starting to the north. Unlike Coord.Neighbors4 nothing is
// filtered out; consumers decide what out-of-bounds means for them.
func (v Vector) Neighbors4() [4]Vector {
	return [4]Vector{
		v.Add(Dir4North.Deltas()),
		v.Add(Dir4East.Deltas()),
		v.Add(Dir4South.Deltas()),
		v.Add(Dir4West.Deltas()),
	}
}

// Neighbors8 returns the eight adjacent vectors in clockwise order
// starting to the north. Unlike Coord.Neighbors8 nothing is filtered
// out; consumers decide what out-of-bounds means for them.
func (v Vector) Neighbors8() [8]Vector {
	var out [8]Vector
	for i, d := range Directions8 {
		out[i] = v.Add(d.Deltas())
	}
	return out
}

// Point9 classifies the direction v points in as the nearest of the
// eight compass directions, or Dir9Center for the zero vector. Each
// compass direction owns an equal 45° slice of the circle centered on
// its exact angle.
func (v Vector) Point9() Direction9 {
	if v.X == 0 && v.Y == 0 {
		return Dir9Center
	}
	// +y is down on screen, so negate y to get the usual math angle.
	angle := math.Atan2(float64(-v.Y), float64(v.X))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	switch sixteenth := angle / (2 * math.Pi) * 16; {
	case sixteenth < 1:
		return Dir9East
	case sixteenth < 3:
		return Dir9NorthEast
	case sixteenth < 5:
		return Dir9North
	case sixteenth < 7:
		return Dir9NorthWest
	case sixteenth < 9:
		return Dir9West
	case sixteenth < 11:
		return Dir9SouthWest
	case sixteenth < 13:
		return Dir9South
	case sixteenth < 15:
		return Dir9SouthEast
	default:
		return Dir9East
	}
}

// String renders v as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
