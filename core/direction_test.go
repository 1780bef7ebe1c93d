package core_test

import (
	"math"
	"testing"

	"github.com/gamma-delta/aglet/core"
	"github.com/stretchr/testify/require"
)

// TestRotateFullCircle verifies the full-circle identity: rotating by
// zero or by a whole turn is a no-op for every direction.
func TestRotateFullCircle(t *testing.T) {
	for _, d := range core.Directions4 {
		require.Equal(t, d, d.RotateBy(0))
		require.Equal(t, d, d.RotateBy(4))
		require.Equal(t, d, d.RotateBy(-4))
	}
	for _, d := range core.Directions8 {
		require.Equal(t, d, d.RotateBy(0))
		require.Equal(t, d, d.RotateBy(8))
		require.Equal(t, d, d.RotateBy(-8))
	}
}

func TestRotateBy(t *testing.T) {
	require.Equal(t, core.Dir4East, core.Dir4North.RotateBy(1))
	require.Equal(t, core.Dir4West, core.Dir4North.RotateBy(-1))
	// Steps far outside one turn still land correctly (floored modulo).
	require.Equal(t, core.Dir4West, core.Dir4North.RotateBy(-5))
	require.Equal(t, core.Dir4South, core.Dir4North.RotateBy(10))

	require.Equal(t, core.Dir8NorthEast, core.Dir8North.RotateBy(1))
	require.Equal(t, core.Dir8NorthWest, core.Dir8North.RotateBy(-9))
	require.Equal(t, core.Dir8South, core.Dir8North.RotateBy(-20))
}

func TestRotate(t *testing.T) {
	require.Equal(t, core.Dir4East, core.Dir4North.Rotate(core.Clockwise))
	require.Equal(t, core.Dir4West, core.Dir4North.Rotate(core.CounterClockwise))
	require.Equal(t, core.Dir8NorthWest, core.Dir8North.Rotate(core.CounterClockwise))
	require.Equal(t, 1, core.Clockwise.StepsClockwise())
	require.Equal(t, -1, core.CounterClockwise.StepsClockwise())
}

// TestFlipTwice verifies the double-flip identity for every direction.
func TestFlipTwice(t *testing.T) {
	for _, d := range core.Directions4 {
		require.Equal(t, d, d.Flip().Flip())
	}
	for _, d := range core.Directions8 {
		require.Equal(t, d, d.Flip().Flip())
	}
	for _, d := range core.Directions9 {
		require.Equal(t, d, d.Flip().Flip())
	}
}

func TestFlip(t *testing.T) {
	require.Equal(t, core.Dir4South, core.Dir4North.Flip())
	require.Equal(t, core.Dir4West, core.Dir4East.Flip())
	require.Equal(t, core.Dir8SouthWest, core.Dir8NorthEast.Flip())
	require.Equal(t, core.Dir9South, core.Dir9North.Flip())
	require.Equal(t, core.Dir9Center, core.Dir9Center.Flip())
}

// TestRadians pins the graphical angle convention: east is 0 and the
// angle grows clockwise, a quarter turn per compass quarter.
func TestRadians(t *testing.T) {
	const tau = 2 * math.Pi

	require.InDelta(t, 0, core.Dir4East.Radians(), 1e-12)
	require.InDelta(t, tau/4, core.Dir4South.Radians(), 1e-12)
	require.InDelta(t, tau/2, core.Dir4West.Radians(), 1e-12)
	require.InDelta(t, 3*tau/4, core.Dir4North.Radians(), 1e-12)

	require.InDelta(t, 0, core.Dir8East.Radians(), 1e-12)
	require.InDelta(t, tau/8, core.Dir8SouthEast.Radians(), 1e-12)
	require.InDelta(t, tau/4, core.Dir8South.Radians(), 1e-12)
	require.InDelta(t, tau/2, core.Dir8West.Radians(), 1e-12)
	require.InDelta(t, 3*tau/4, core.Dir8North.Radians(), 1e-12)
	require.InDelta(t, 7*tau/8, core.Dir8NorthEast.Radians(), 1e-12)
}

// TestDeltas verifies the unit-step tables and that the four- and
// eight-way tables agree on the orthogonal directions.
func TestDeltas(t *testing.T) {
	require.Equal(t, core.V(0, -1), core.Dir4North.Deltas())
	require.Equal(t, core.V(1, 0), core.Dir4East.Deltas())
	require.Equal(t, core.V(0, 1), core.Dir4South.Deltas())
	require.Equal(t, core.V(-1, 0), core.Dir4West.Deltas())

	require.Equal(t, core.V(1, -1), core.Dir8NorthEast.Deltas())
	require.Equal(t, core.V(-1, 1), core.Dir8SouthWest.Deltas())

	for _, d := range core.Directions4 {
		require.Equal(t, d.Deltas(), d.To8().Deltas())
	}
	for _, d := range core.Directions8 {
		require.Equal(t, d.Deltas(), d.To9().Deltas())
	}
	require.Equal(t, core.V(0, 0), core.Dir9Center.Deltas())
}

func TestHorizontalVertical(t *testing.T) {
	require.True(t, core.Dir4East.IsHorizontal())
	require.True(t, core.Dir4West.IsHorizontal())
	require.False(t, core.Dir4North.IsHorizontal())
	require.True(t, core.Dir4North.IsVertical())
	require.True(t, core.Dir4South.IsVertical())
	require.False(t, core.Dir4East.IsVertical())
}

// TestConversions covers the total injections 4→8→9 and the lossy 9→8.
func TestConversions(t *testing.T) {
	require.Equal(t, core.Dir8North, core.Dir4North.To8())
	require.Equal(t, core.Dir8East, core.Dir4East.To8())
	require.Equal(t, core.Dir8South, core.Dir4South.To8())
	require.Equal(t, core.Dir8West, core.Dir4West.To8())

	// 8→9→8 round trip is the identity.
	for _, d := range core.Directions8 {
		back, err := d.To9().To8()
		require.NoError(t, err)
		require.Equal(t, d, back)
	}

	_, err := core.Dir9Center.To8()
	require.ErrorIs(t, err, core.ErrCenterDirection)
}

// TestDirection9Rotate verifies rotation through the Direction8 mapping
// and the center fixpoint.
func TestDirection9Rotate(t *testing.T) {
	require.Equal(t, core.Dir9NorthEast, core.Dir9North.RotateBy(1))
	require.Equal(t, core.Dir9West, core.Dir9North.RotateBy(-2))
	for steps := -9; steps <= 9; steps++ {
		require.Equal(t, core.Dir9Center, core.Dir9Center.RotateBy(steps))
	}
	require.Equal(t, core.Dir9Center, core.Dir9Center.Rotate(core.Clockwise))
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "North", core.Dir4North.String())
	require.Equal(t, "SouthWest", core.Dir8SouthWest.String())
	require.Equal(t, "Center", core.Dir9Center.String())
}
