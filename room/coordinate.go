// Package room identifies rooms in the installation grid
package room

import "fmt"

// Coordinate is an immutable integer room position
type Coordinate struct {
	X, Y, Z int
}

// Origin is the starting room
var Origin = Coordinate{}

// New builds a Coordinate
func New(x, y, z int) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Equal reports whether all three components match
func (c Coordinate) Equal(o Coordinate) bool {
	return c == o
}

// Add offsets the coordinate, used for portal neighbors
func (c Coordinate) Add(dx, dy, dz int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// ID returns the room identity
func (c Coordinate) ID() string {
	return UniqueID(c.X, c.Y, c.Z)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
