package systems

import (
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/portal"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// PortalAnimationSystem opens portal frames as the viewer approaches and closes them on retreat
type PortalAnimationSystem struct {
	ctrl *portal.Controller
	host host.Host
	occ  *Occupancy
	bars map[core.Entity]portal.Bars
}

func NewPortalAnimationSystem(ctrl *portal.Controller, h host.Host, occ *Occupancy) *PortalAnimationSystem {
	return &PortalAnimationSystem{
		ctrl: ctrl,
		host: h,
		occ:  occ,
		bars: make(map[core.Entity]portal.Bars),
	}
}

var _ engine.System = (*PortalAnimationSystem)(nil)

func (s *PortalAnimationSystem) Name() string  { return "portal-animation" }
func (s *PortalAnimationSystem) Priority() int { return parameter.PriorityPortal }

// Bars returns the current frame geometry of portal e
func (s *PortalAnimationSystem) Bars(e core.Entity) portal.Bars {
	return s.bars[e]
}

func (s *PortalAnimationSystem) Update(dt float64) {
	inside := s.occ == nil || s.occ.Inside()
	player := s.host.Position()

	for _, e := range s.ctrl.Portals() {
		s.ctrl.Store.Update(e, func(p *component.PortalComponent) {
			if !inside {
				p.Progress, p.Opening, p.Chimed = 0, false, false
				s.bars[e] = portal.Bars{}
				s.hide(p)
				return
			}

			p.Opening = vmath.Distance(player, s.host.WorldPosition(e)) < parameter.PortalMaxDistance
			step := dt * parameter.PortalAnimationSpeed
			if p.Opening {
				p.Progress = vmath.Clamp01(p.Progress + step)
			} else {
				p.Progress = vmath.Clamp01(p.Progress - step)
			}

			b := s.bars[e].Step(p.Progress, p.Opening)
			s.bars[e] = b
			left, right, top := b.Transforms()
			s.host.SetTransform(p.Left, left)
			s.host.SetTransform(p.Right, right)
			s.host.SetTransform(p.Top, top)

			if p.Progress <= 0 {
				p.Chimed = false
				s.hide(p)
				return
			}
			s.host.SetMesh(p.Left, portal.FrameMesh)
			s.host.SetMesh(p.Right, portal.FrameMesh)
			s.host.SetMesh(p.Top, portal.TopFrameMesh)

			if p.Opening && p.Progress >= 1 && !p.Chimed {
				s.host.Play(p.Top, parameter.ConfirmClip, false, parameter.ChimeVolume)
				p.Chimed = true
			}
		})
	}
}

func (s *PortalAnimationSystem) hide(p *component.PortalComponent) {
	s.host.ClearMesh(p.Left)
	s.host.ClearMesh(p.Right)
	s.host.ClearMesh(p.Top)
}
