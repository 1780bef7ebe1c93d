package core_test

import (
	"testing"

	"github.com/gamma-delta/aglet/core"
	"github.com/stretchr/testify/require"
)

func TestCoordArithmetic(t *testing.T) {
	a := core.C(3, 5)
	b := core.C(2, 1)

	require.Equal(t, core.C(5, 6), a.Add(b))
	require.Equal(t, core.C(1, 4), a.Sub(b))
	require.Equal(t, core.C(9, 15), a.Mul(3))
	require.Equal(t, core.C(6, 5), a.MulCoord(b))
}

func TestCoordIndex(t *testing.T) {
	// Row-major: y*width + x.
	require.Equal(t, uint32(23), core.C(3, 2).Index(10))
	require.Equal(t, uint32(0), core.ZeroCoord.Index(7))
	require.Equal(t, uint32(9), core.C(9, 0).Index(10))
}

// TestCoordVectorRoundTrip verifies that every in-range Coord survives
// the widening/narrowing round trip unchanged.
func TestCoordVectorRoundTrip(t *testing.T) {
	coords := []core.Coord{
		core.ZeroCoord,
		core.C(1, 0),
		core.C(0, 1),
		core.C(12, 34),
		core.C(1<<31-1, 1<<31-1),
	}
	for _, c := range coords {
		back, err := c.ToVector().ToCoord()
		require.NoError(t, err)
		require.Equal(t, c, back)
	}
}

// TestCoordNeighbors4 checks the clockwise ordering and the silent
// dropping of neighbors with negative components.
func TestCoordNeighbors4(t *testing.T) {
	cases := []struct {
		name string
		c    core.Coord
		want []core.Coord
	}{
		{"Origin", core.C(0, 0), []core.Coord{{X: 1}, {Y: 1}}},
		{"LeftEdge", core.C(0, 5), []core.Coord{{X: 0, Y: 4}, {X: 1, Y: 5}, {X: 0, Y: 6}}},
		{"TopEdge", core.C(5, 0), []core.Coord{{X: 6, Y: 0}, {X: 5, Y: 1}, {X: 4, Y: 0}}},
		{"Interior", core.C(4, 7), []core.Coord{
			{X: 4, Y: 6}, {X: 5, Y: 7}, {X: 4, Y: 8}, {X: 3, Y: 7},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.c.Neighbors4())
		})
	}
}

func TestCoordNeighbors8(t *testing.T) {
	// At the origin only east, south-east and south survive.
	require.Equal(t,
		[]core.Coord{{X: 1}, {X: 1, Y: 1}, {Y: 1}},
		core.C(0, 0).Neighbors8())

	// On the top edge the three northern neighbors are dropped.
	require.Len(t, core.C(3, 0).Neighbors8(), 5)

	// Interior cells keep all eight, clockwise from north.
	require.Equal(t, []core.Coord{
		{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
		{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1},
	}, core.C(2, 2).Neighbors8())
}

func TestCoordString(t *testing.T) {
	require.Equal(t, "(3, 5)", core.C(3, 5).String())
}
