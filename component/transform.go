package component

import (
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// TransformComponent is a position, rotation and scale record
// Used both for abstract swarm transforms and for the host-facing rendered transform
type TransformComponent struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    vmath.Vec3
}

// NewTransform returns an identity transform at the origin with unit scale
func NewTransform() TransformComponent {
	return TransformComponent{
		Rotation: vmath.Identity(),
		Scale:    vmath.One(),
	}
}

// At returns an identity transform at p
func At(p vmath.Vec3) TransformComponent {
	t := NewTransform()
	t.Position = p
	return t
}

// Finite reports whether every field is free of NaN and Inf
func (t TransformComponent) Finite() bool {
	return vmath.Finite(t.Position) && vmath.Finite(t.Scale) && vmath.FiniteQuat(t.Rotation)
}

// ParentComponent attaches an entity to a parent transform
type ParentComponent struct {
	Parent core.Entity
}
