// Package host is the contract between the installation and the world that renders it.
//
// The installation only talks to these interfaces. host/sim implements them
// in process for the terminal preview and for tests.
package host

import (
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Transforms positions rendered entities
type Transforms interface {
	SetTransform(e core.Entity, t component.TransformComponent)
	Transform(e core.Entity) (component.TransformComponent, bool)
	SetParent(child, parent core.Entity)
	WorldPosition(e core.Entity) vmath.Vec3
}

// Interaction registers pointer handlers
type Interaction interface {
	OnClick(e core.Entity, label string, maxDistance float64, fn func())
}

// Materials sets appearance
type Materials interface {
	SetMaterial(e core.Entity, m component.MaterialComponent)
	SetMesh(e core.Entity, mesh string)
	ClearMesh(e core.Entity)
}

// Audio drives clip playback on emitter entities
type Audio interface {
	Play(e core.Entity, clip string, loop bool, volume float64)
	Stop(e core.Entity)
}

// Player is the viewer
type Player interface {
	Position() vmath.Vec3
	Teleport(p vmath.Vec3)
}

// Host is everything the installation needs from its environment
type Host interface {
	Transforms
	Interaction
	Materials
	Audio
	Player
}
