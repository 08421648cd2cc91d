package component

import "github.com/lixenwraith/swarm-installation/vmath"

// SwarmComponent is the abstract state of one swarm entity
// Local is written by shapes and motion systems, Global and Deviation are derived per frame
type SwarmComponent struct {
	// Slot is the entity's stable index in the installation pool
	Slot int

	Local TransformComponent

	// Global is Local.Position offset by the installation parent
	Global vmath.Vec3

	// Deviation is the transient force-field displacement
	Deviation vmath.Vec3
}
