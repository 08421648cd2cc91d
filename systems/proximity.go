package systems

import (
	"context"
	"log"

	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/parameter"
)

// Suspender is the room lifecycle the proximity system drives
type Suspender interface {
	Suspend(ctx context.Context)
	Resume(ctx context.Context) error
}

// ProximitySystem tracks the viewer entering and leaving the installation cube
// Leaving stops the ambience and suspends the room, entering resumes both
type ProximitySystem struct {
	ctx   context.Context
	inst  *installation.Installation
	scene Suspender
	occ   *Occupancy

	observed bool
}

// NewProximitySystem creates the proximity system, scene may be nil when rooms are not suspended
func NewProximitySystem(ctx context.Context, inst *installation.Installation, scene Suspender, occ *Occupancy) *ProximitySystem {
	return &ProximitySystem{ctx: ctx, inst: inst, scene: scene, occ: occ}
}

var _ engine.System = (*ProximitySystem)(nil)

func (s *ProximitySystem) Name() string  { return "proximity" }
func (s *ProximitySystem) Priority() int { return parameter.PriorityProximity }

// Update acts on occupancy edges only, the first frame always counts as an edge
func (s *ProximitySystem) Update(_ float64) {
	inside := InsideCube(s.inst.Host().Position(), s.inst.ParentPosition())
	if s.observed && inside == s.occ.Inside() {
		return
	}
	s.observed = true
	s.occ.set(inside)

	if inside {
		if s.scene != nil {
			if err := s.scene.Resume(s.ctx); err != nil {
				log.Printf("proximity: resume: %v", err)
			}
		}
		s.inst.PlayMusic()
		return
	}

	s.inst.StopMusic()
	if s.scene != nil {
		s.scene.Suspend(s.ctx)
	}
}
