package systems

import (
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// AggregateSystem derives global swarm positions from local ones and the installation parent
type AggregateSystem struct {
	inst *installation.Installation
	occ  *Occupancy
}

// NewAggregateSystem creates the aggregate system, occ gates updates to frames with a viewer inside
func NewAggregateSystem(inst *installation.Installation, occ *Occupancy) *AggregateSystem {
	return &AggregateSystem{inst: inst, occ: occ}
}

var _ engine.System = (*AggregateSystem)(nil)

func (s *AggregateSystem) Name() string  { return "aggregate" }
func (s *AggregateSystem) Priority() int { return parameter.PriorityAggregate }

// Update recomputes Global for every pool entity
func (s *AggregateSystem) Update(_ float64) {
	if s.occ != nil && !s.occ.Inside() {
		return
	}
	parent := s.inst.ParentPosition()
	scale := vmath.One()
	if t, ok := s.inst.Host().Transform(s.inst.Parent()); ok {
		scale = t.Scale
	}

	for _, e := range s.inst.Entities() {
		s.inst.Swarm.Update(e, func(sc *component.SwarmComponent) {
			p := sc.Local.Position
			sc.Global = parent.Add(vmath.V3(p[0]*scale[0], p[1]*scale[1], p[2]*scale[2]))
		})
	}
}
