package motion

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/seed"
)

// ReferenceFPS converts per-frame rotation steps into per-second rates
const ReferenceFPS = 30.0

// Swarm is the context a motion system animates: the installation's entity pool by slot
type Swarm interface {
	Count() int
	Local(i int) component.TransformComponent
	SetLocal(i int, t component.TransformComponent)
}

// System is a running motion system
type System interface {
	Kind() Kind
	Params() Params
	Update(dt float64)
}

// New initializes a motion system of kind for the room identity
// Per-entity state is captured from the swarm's current local transforms
func New(kind Kind, id string, swarm Swarm, norm seed.Normalization) (System, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("motion: invalid kind %d", kind)
	}
	return Build(Derive(kind, id, norm), id, swarm), nil
}

// Build initializes a motion system from explicit parameters
func Build(p Params, id string, swarm Swarm) System {
	rng := newRand(id, uint64(p.Kind()))

	switch p := p.(type) {
	case RotateParams:
		return newRotate(p, swarm, rng)
	case WanderParams:
		return newWander(p, id, swarm)
	case JumpParams:
		return newJump(p, swarm, rng)
	case FollowParams:
		return newFollow(p, swarm)
	case ParticleParams:
		return newParticle(p, swarm, rng)
	case WiggleParams:
		return newWiggle(p, swarm)
	case RollingParams:
		return newRolling(p, swarm)
	case OrbitParams:
		return newOrbit(p, swarm, rng)
	default:
		return newJump(JumpParams{}, swarm, rng)
	}
}

// newRand seeds a PCG from the identity, salted per kind so systems don't share streams
func newRand(id string, salt uint64) *rand.Rand {
	s := seed.Seed64(id)
	return rand.New(rand.NewPCG(s, s^(salt*0x9e3779b97f4a7c15+1)))
}
