package component

import (
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// InteractiveComponent marks an entity that accepts pointer clicks
type InteractiveComponent struct {
	Label       string
	MaxDistance float64
}

// PortalComponent tracks the opening animation of a portal frame
type PortalComponent struct {
	Name      string
	Direction vmath.Vec3

	// Left, Right and Top are the frame bar entities, children of the portal
	Left  core.Entity
	Right core.Entity
	Top   core.Entity

	// Progress ramps toward 1 while the player is near, toward 0 otherwise
	Progress float64
	Opening  bool

	// Chimed is set once the confirm chime played for the current opening
	Chimed bool
}
