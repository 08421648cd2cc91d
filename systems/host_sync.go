package systems

import (
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/parameter"
)

// HostSyncSystem pushes settled swarm state to the host
type HostSyncSystem struct {
	inst *installation.Installation
}

func NewHostSyncSystem(inst *installation.Installation) *HostSyncSystem {
	return &HostSyncSystem{inst: inst}
}

var _ engine.System = (*HostSyncSystem)(nil)

func (s *HostSyncSystem) Name() string  { return "host-sync" }
func (s *HostSyncSystem) Priority() int { return parameter.PriorityHostSync }

// Update writes Local offset by Deviation as each entity's host transform
func (s *HostSyncSystem) Update(_ float64) {
	h := s.inst.Host()
	for _, e := range s.inst.Entities() {
		sc, ok := s.inst.Swarm.Get(e)
		if !ok {
			continue
		}
		t := sc.Local
		t.Position = t.Position.Add(sc.Deviation)
		h.SetTransform(e, t)
	}
}
