package systems

import (
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// ForceFieldSystem pushes swarm entities away from the viewer
type ForceFieldSystem struct {
	inst   *installation.Installation
	occ    *Occupancy
	radius float64
}

// NewForceFieldSystem creates a force field with the default radius
func NewForceFieldSystem(inst *installation.Installation, occ *Occupancy) *ForceFieldSystem {
	return &ForceFieldSystem{inst: inst, occ: occ, radius: parameter.ForceFieldRadius}
}

var _ engine.System = (*ForceFieldSystem)(nil)

func (s *ForceFieldSystem) Name() string  { return "force-field" }
func (s *ForceFieldSystem) Priority() int { return parameter.PriorityForceField }

// Update sets each entity's Deviation from its global position
// Entities within radius move radius-d away from the viewer, others have zero deviation
func (s *ForceFieldSystem) Update(_ float64) {
	active := s.occ == nil || s.occ.Inside()
	player := s.inst.Host().Position()

	for _, e := range s.inst.Entities() {
		s.inst.Swarm.Update(e, func(sc *component.SwarmComponent) {
			sc.Deviation = vmath.Vec3{}
			if !active {
				return
			}
			d := vmath.Distance(player, sc.Global)
			if d >= s.radius {
				return
			}
			// Zero direction when the viewer sits exactly on the entity
			dir := vmath.Normalize(player.Sub(sc.Global))
			sc.Deviation = dir.Mul(-(s.radius - d))
		})
	}
}
