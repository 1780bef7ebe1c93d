package line

import "github.com/gamma-delta/aglet/core"

// octant identifies one of the eight symmetric angular regions around
// the start point. Octant 0 holds the shallow, non-negative slopes
// (dx ≥ dy ≥ 0); every other octant maps onto it by a fixed reflection
// or axis swap, so the stepping loop has a single case to handle.
type octant uint8

// octantOf classifies the displacement end-start. Three decisions build
// the code: flip vertically if dy is negative, rotate if dx is negative
// after that, swap axes if the line is steep.
func octantOf(start, end core.Coord) octant {
	dx := int32(end.X) - int32(start.X)
	dy := int32(end.Y) - int32(start.Y)

	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

// toZero maps a real-space point into octant-0 space.
func (o octant) toZero(p core.Vector) core.Vector {
	switch o {
	case 0:
		return core.V(p.X, p.Y)
	case 1:
		return core.V(p.Y, p.X)
	case 2:
		return core.V(p.Y, -p.X)
	case 3:
		return core.V(-p.X, p.Y)
	case 4:
		return core.V(-p.X, -p.Y)
	case 5:
		return core.V(-p.Y, -p.X)
	case 6:
		return core.V(-p.Y, p.X)
	default: // 7
		return core.V(p.X, -p.Y)
	}
}

// fromZero is the inverse of toZero, mapping an octant-0 point back
// into real space.
func (o octant) fromZero(p core.Vector) core.Vector {
	switch o {
	case 0:
		return core.V(p.X, p.Y)
	case 1:
		return core.V(p.Y, p.X)
	case 2:
		return core.V(-p.Y, p.X)
	case 3:
		return core.V(-p.X, p.Y)
	case 4:
		return core.V(-p.X, -p.Y)
	case 5:
		return core.V(-p.Y, -p.X)
	case 6:
		return core.V(p.Y, -p.X)
	default: // 7
		return core.V(p.X, -p.Y)
	}
}
