package systems

import (
	"context"

	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/metrics"
	"github.com/lixenwraith/swarm-installation/portal"
)

// Deps are the collaborators of the global systems, Scene, Portals and Metrics are optional
type Deps struct {
	Installation *installation.Installation
	Scene        Suspender
	Portals      *portal.Controller
	Metrics      *metrics.Metrics
}

// Install registers every global system on world and returns their handles
func Install(ctx context.Context, world *engine.World, d Deps) (*Occupancy, []engine.Handle) {
	occ := &Occupancy{}
	list := []engine.System{
		NewAggregateSystem(d.Installation, occ),
		NewForceFieldSystem(d.Installation, occ),
		NewProximitySystem(ctx, d.Installation, d.Scene, occ),
		NewHostSyncSystem(d.Installation),
	}
	if d.Portals != nil {
		list = append(list, NewPortalAnimationSystem(d.Portals, d.Installation.Host(), occ))
	}
	if d.Metrics != nil {
		list = append(list, NewMetricsSystem(d.Metrics, world.Scheduler))
	}

	handles := make([]engine.Handle, 0, len(list))
	for _, s := range list {
		handles = append(handles, world.AddSystem(s))
	}
	return occ, handles
}
