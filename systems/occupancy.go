// Package systems holds the global per-frame systems that run beside the room's motion and color
package systems

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Occupancy records whether the viewer stands inside the installation cube
// Written by ProximitySystem, read by systems that only work while the viewer is present
type Occupancy struct {
	inside atomic.Bool
}

// Inside reports the last observed occupancy
func (o *Occupancy) Inside() bool {
	return o.inside.Load()
}

func (o *Occupancy) set(v bool) {
	o.inside.Store(v)
}

// InsideCube reports whether p is within the cube around center
// Horizontal bounds are exclusive and p must stand above the floor height
func InsideCube(p, center vmath.Vec3) bool {
	return math.Abs(p[0]-center[0]) < parameter.CubeHalfExtent &&
		math.Abs(p[2]-center[2]) < parameter.CubeHalfExtent &&
		p[1] > parameter.CubeFloorHeight
}
