package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginIsDefaultID(t *testing.T) {
	assert.Equal(t, DefaultID, UniqueID(0, 0, 0))
	assert.Equal(t, DefaultID, Origin.ID())
	assert.Equal(t, strings.Repeat("0", 24), DefaultID)
}

func TestUniqueIDDeterministic(t *testing.T) {
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			a := UniqueID(x, 1, z)
			b := UniqueID(x, 1, z)
			assert.Equal(t, a, b)
		}
	}
}

func TestUniqueIDShape(t *testing.T) {
	for _, c := range []Coordinate{New(1, 0, 0), New(-1, 0, 0), New(0, 0, 1), New(1<<20, -7, 3)} {
		id := c.ID()
		require.Len(t, id, IDLength)
		for _, r := range id {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in %s", r, id)
		}
	}
}

func TestNeighborsDiffer(t *testing.T) {
	c := New(2, 0, -1)
	ids := map[string]Coordinate{}
	for _, n := range []Coordinate{c, c.Add(1, 0, 0), c.Add(-1, 0, 0), c.Add(0, 0, 1), c.Add(0, 0, -1)} {
		id := n.ID()
		_, dup := ids[id]
		assert.False(t, dup, "neighbor %v collides", n)
		ids[id] = n
	}
}

func TestMirroredRoomsDiffer(t *testing.T) {
	pairs := [][2]Coordinate{
		{New(1, 0, -1), New(-1, 0, 1)},
		{New(1, 0, 1), New(-1, 0, -1)},
		{New(2, 0, 0), New(-2, 0, 0)},
		{New(0, 3, 0), New(0, -3, 0)},
		{New(1, 2, 3), New(3, 2, 1)},
		{New(1, 0, 0), New(0, 1, 0)},
		{New(0, 1, 0), New(0, 0, 1)},
	}
	for _, p := range pairs {
		assert.NotEqual(t, p[0].ID(), p[1].ID(), "%v and %v share an identity", p[0], p[1])
	}
}

func TestNoCollisionsInBlock(t *testing.T) {
	seen := make(map[string]Coordinate)
	for x := -10; x <= 10; x++ {
		for y := -2; y <= 2; y++ {
			for z := -10; z <= 10; z++ {
				c := New(x, y, z)
				id := c.ID()
				if prev, dup := seen[id]; dup {
					t.Fatalf("%v and %v share identity %s", prev, c, id)
				}
				seen[id] = c
			}
		}
	}
	assert.Len(t, seen, 21*5*21)
}

func TestCoordinateEqual(t *testing.T) {
	assert.True(t, New(1, 2, 3).Equal(New(1, 2, 3)))
	assert.False(t, New(1, 2, 3).Equal(New(1, 2, 4)))
	assert.Equal(t, "(1,2,-3)", New(1, 2, -3).String())
}

func TestSurveyDigitDistribution(t *testing.T) {
	h := Survey(Range{-10, 10}, Range{-2, 2}, Range{-10, 10})
	require.Equal(t, 21*5*21, h.Rooms)
	assert.Equal(t, h.Rooms*IDLength, h.Total())

	// Statistical, not cryptographic: every digit within 10% of uniform
	for d := 0; d < 10; d++ {
		assert.InDelta(t, 0.1, h.Frequency(d), 0.01, "digit %d", d)
	}
	assert.Equal(t, h.Rooms, h.Unique)
}
