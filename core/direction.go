package core

import "math"

// Direction4 is one of the four orthogonal compass directions. The
// constants start at north and increment clockwise, so converting to an
// integer gives a rotational index directly.
type Direction4 uint8

const (
	Dir4North Direction4 = iota
	Dir4East
	Dir4South
	Dir4West
)

// Directions4 lists all four-way directions in clockwise order starting
// at north. Rotations and flips index into this table.
var Directions4 = [4]Direction4{Dir4North, Dir4East, Dir4South, Dir4West}

// Direction8 is one of the eight compass directions, orthogonal and
// diagonal. The constants start at north and increment clockwise.
type Direction8 uint8

const (
	Dir8North Direction8 = iota
	Dir8NorthEast
	Dir8East
	Dir8SouthEast
	Dir8South
	Dir8SouthWest
	Dir8West
	Dir8NorthWest
)

// Directions8 lists all eight-way directions in clockwise order starting
// at north. Rotations and flips index into this table.
var Directions8 = [8]Direction8{
	Dir8North, Dir8NorthEast, Dir8East, Dir8SouthEast,
	Dir8South, Dir8SouthWest, Dir8West, Dir8NorthWest,
}

// Direction9 is one of the eight compass directions plus a center value
// for the zero-length case. The constants are declared in grid-layout
// order (row by row); there is no rotational order, rotation is defined
// through the Direction8 mapping.
type Direction9 uint8

const (
	Dir9NorthWest Direction9 = iota
	Dir9North
	Dir9NorthEast
	Dir9West
	Dir9Center
	Dir9East
	Dir9SouthWest
	Dir9South
	Dir9SouthEast
)

// Directions9 lists all nine-way directions in grid-layout order.
var Directions9 = [9]Direction9{
	Dir9NorthWest, Dir9North, Dir9NorthEast,
	Dir9West, Dir9Center, Dir9East,
	Dir9SouthWest, Dir9South, Dir9SouthEast,
}

// Rotation is a turn sense: clockwise or counter-clockwise. It carries
// no angle by itself, only a sign for rotation steps.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// StepsClockwise converts the rotation to a signed step count:
// +1 for Clockwise, -1 for CounterClockwise.
func (r Rotation) StepsClockwise() int {
	if r == CounterClockwise {
		return -1
	}
	return 1
}

// euclidMod is the floored modulo: the result is always in [0, n) for
// n > 0, regardless of the sign of a.
func euclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Rotate returns d rotated one step in the given sense.
func (d Direction4) Rotate(r Rotation) Direction4 {
	return d.RotateBy(r.StepsClockwise())
}

// RotateBy returns d rotated the given number of steps clockwise.
// Negative steps rotate counter-clockwise; any integer works, not just
// values within one turn.
func (d Direction4) RotateBy(steps int) Direction4 {
	return Directions4[euclidMod(int(d)+steps, len(Directions4))]
}

// Flip returns the opposite direction.
func (d Direction4) Flip() Direction4 {
	return d.RotateBy(2)
}

// Radians returns d's angle under the graphical convention: 0 is east
// and the angle increases clockwise, matching a +y-down screen.
func (d Direction4) Radians() float64 {
	return float64(euclidMod(int(d)-1, 4)) * (2 * math.Pi / 4)
}

// Deltas returns the unit step a move in this direction takes.
func (d Direction4) Deltas() Vector {
	switch d {
	case Dir4North:
		return Vector{0, -1}
	case Dir4East:
		return Vector{1, 0}
	case Dir4South:
		return Vector{0, 1}
	default:
		return Vector{-1, 0}
	}
}

// IsHorizontal reports whether d is east or west.
func (d Direction4) IsHorizontal() bool {
	return d == Dir4East || d == Dir4West
}

// IsVertical reports whether d is north or south.
func (d Direction4) IsVertical() bool {
	return d == Dir4North || d == Dir4South
}

// To8 widens d to the equivalent Direction8. Always succeeds.
func (d Direction4) To8() Direction8 {
	return Directions8[int(d)*2]
}

func (d Direction4) String() string {
	return [...]string{"North", "East", "South", "West"}[d]
}

// Rotate returns d rotated one step in the given sense.
func (d Direction8) Rotate(r Rotation) Direction8 {
	return d.RotateBy(r.StepsClockwise())
}

// RotateBy returns d rotated the given number of steps clockwise.
// Negative steps rotate counter-clockwise; any integer works, not just
// values within one turn.
func (d Direction8) RotateBy(steps int) Direction8 {
	return Directions8[euclidMod(int(d)+steps, len(Directions8))]
}

// Flip returns the opposite direction.
func (d Direction8) Flip() Direction8 {
	return d.RotateBy(4)
}

// Radians returns d's angle under the graphical convention: 0 is east
// and the angle increases clockwise, matching a +y-down screen.
func (d Direction8) Radians() float64 {
	return float64(euclidMod(int(d)-2, 8)) * (2 * math.Pi / 8)
}

// Deltas returns the unit (or diagonal unit) step a move in this
// direction takes.
func (d Direction8) Deltas() Vector {
	switch d {
	case Dir8North:
		return Vector{0, -1}
	case Dir8NorthEast:
		return Vector{1, -1}
	case Dir8East:
		return Vector{1, 0}
	case Dir8SouthEast:
		return Vector{1, 1}
	case Dir8South:
		return Vector{0, 1}
	case Dir8SouthWest:
		return Vector{-1, 1}
	case Dir8West:
		return Vector{-1, 0}
	default:
		return Vector{-1, -1}
	}
}

// To9 widens d to the equivalent Direction9. Always succeeds.
func (d Direction8) To9() Direction9 {
	switch d {
	case Dir8North:
		return Dir9North
	case Dir8NorthEast:
		return Dir9NorthEast
	case Dir8East:
		return Dir9East
	case Dir8SouthEast:
		return Dir9SouthEast
	case Dir8South:
		return Dir9South
	case Dir8SouthWest:
		return Dir9SouthWest
	case Dir8West:
		return Dir9West
	default:
		return Dir9NorthWest
	}
}

func (d Direction8) String() string {
	return [...]string{
		"North", "NorthEast", "East", "SouthEast",
		"South", "SouthWest", "West", "NorthWest",
	}[d]
}

// Rotate returns d rotated one step in the given sense.
func (d Direction9) Rotate(r Rotation) Direction9 {
	return d.RotateBy(r.StepsClockwise())
}

// RotateBy returns d rotated the given number of steps clockwise,
// through the Direction8 mapping. Dir9Center has no eight-way
// equivalent and rotates to itself.
func (d Direction9) RotateBy(steps int) Direction9 {
	d8, err := d.To8()
	if err != nil {
		return d
	}
	return d8.RotateBy(steps).To9()
}

// Flip returns the opposite direction. Dir9Center flips to itself.
func (d Direction9) Flip() Direction9 {
	return d.RotateBy(4)
}

// Deltas returns the step a move in this direction takes. Dir9Center
// is the zero vector.
func (d Direction9) Deltas() Vector {
	switch d {
	case Dir9NorthWest:
		return Vector{-1, -1}
	case Dir9North:
		return Vector{0, -1}
	case Dir9NorthEast:
		return Vector{1, -1}
	case Dir9West:
		return Vector{-1, 0}
	case Dir9Center:
		return Vector{0, 0}
	case Dir9East:
		return Vector{1, 0}
	case Dir9SouthWest:
		return Vector{-1, 1}
	case Dir9South:
		return Vector{0, 1}
	default:
		return Vector{1, 1}
	}
}

// To8 narrows d to a Direction8.
// Returns ErrCenterDirection exactly when d is Dir9Center.
func (d Direction9) To8() (Direction8, error) {
	switch d {
	case Dir9NorthWest:
		return Dir8NorthWest, nil
	case Dir9North:
		return Dir8North, nil
	case Dir9NorthEast:
		return Dir8NorthEast, nil
	case Dir9West:
		return Dir8West, nil
	case Dir9East:
		return Dir8East, nil
	case Dir9SouthWest:
		return Dir8SouthWest, nil
	case Dir9South:
		return Dir8South, nil
	case Dir9SouthEast:
		return Dir8SouthEast, nil
	default:
		return 0, ErrCenterDirection
	}
}

func (d Direction9) String() string {
	return [...]string{
		"NorthWest", "North", "NorthEast",
		"West", "Center", "East",
		"SouthWest", "South", "SouthEast",
	}[d]
}
