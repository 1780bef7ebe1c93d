package core

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// DirSet is a bitmask set over a direction enumeration. The bit for a
// direction d is 1 << d, following the enum's clockwise declaration
// order, so the mask layout is stable and suitable for wire formats.
// The zero value is the empty set.
type DirSet[D constraints.Unsigned] uint16

// Direction4Set is a set of four-way directions.
type Direction4Set = DirSet[Direction4]

// Direction8Set is a set of eight-way directions.
type Direction8Set = DirSet[Direction8]

// SetOf builds a set holding exactly the given directions. With a single
// argument it is the singleton set.
func SetOf[D constraints.Unsigned](dirs ...D) DirSet[D] {
	var s DirSet[D]
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

// Add returns s with d included.
func (s DirSet[D]) Add(d D) DirSet[D] {
	return s | 1<<d
}

// Remove returns s with d excluded.
func (s DirSet[D]) Remove(d D) DirSet[D] {
	return s &^ (1 << d)
}

// Has reports whether d is in the set.
func (s DirSet[D]) Has(d D) bool {
	return s&(1<<d) != 0
}

// Union returns the set of directions in s, in o, or in both.
func (s DirSet[D]) Union(o DirSet[D]) DirSet[D] {
	return s | o
}

// Intersect returns the set of directions in both s and o.
func (s DirSet[D]) Intersect(o DirSet[D]) DirSet[D] {
	return s & o
}

// IsEmpty reports whether the set holds no directions.
func (s DirSet[D]) IsEmpty() bool {
	return s == 0
}

// Len returns the number of directions in the set.
func (s DirSet[D]) Len() int {
	return bits.OnesCount16(uint16(s))
}
