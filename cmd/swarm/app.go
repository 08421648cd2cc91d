package main

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/swarm-installation/audio"
	"github.com/lixenwraith/swarm-installation/config"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host/sim"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/metrics"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/portal"
	"github.com/lixenwraith/swarm-installation/scene"
	"github.com/lixenwraith/swarm-installation/systems"
)

// app is one fully wired installation
type app struct {
	cfg     config.Config
	world   *engine.World
	sound   *audio.SoundManager
	host    *sim.Host
	inst    *installation.Installation
	scene   *scene.Manager
	portals *portal.Controller
	metrics *metrics.Metrics
	loop    *engine.FrameLoop
}

// newApp builds the world, installation, room manager and global systems, then loads the origin room
func newApp(ctx context.Context, cfg config.Config, withMetrics bool) (*app, error) {
	instCfg, err := cfg.ToInstallation()
	if err != nil {
		return nil, err
	}

	store, err := scene.OpenStore(cfg.Scene.Snapshot.Driver, cfg.Scene.Snapshot.Path)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}

	a := &app{cfg: cfg, world: engine.NewWorld(), sound: audio.NewSoundManager()}
	a.sound.TryInitialize(cfg.Audio.Enabled)

	a.host = sim.New(a.world, a.sound)
	a.host.Teleport(parameter.PlayerStart())

	a.inst = installation.New(a.world, a.host, instCfg)
	a.inst.RegisterDefaults()

	opts := scene.Options{Revisit: cfg.Revisit(), Store: store}
	if withMetrics {
		a.metrics = metrics.New()
		opts.Observer = a.metrics
	}
	a.scene = scene.NewManager(a.world, a.inst, opts)

	a.portals = portal.NewController(ctx, a.world, a.host, a.scene)
	a.portals.CreateDefaults()

	systems.Install(ctx, a.world, systems.Deps{
		Installation: a.inst,
		Scene:        a.scene,
		Portals:      a.portals,
		Metrics:      a.metrics,
	})

	a.loop = engine.NewFrameLoop(a.world, engine.NewTimeProvider(), cfg.FrameInterval())
	if a.metrics != nil {
		a.loop.SetObserver(a.metrics.ObserveFrame)
	}

	if err := a.scene.LoadDefault(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("load origin room: %w", err)
	}
	log.Printf("installation ready: %d entities, revisit=%s, store=%s", instCfg.Count, cfg.Revisit(), cfg.Scene.Snapshot.Driver)
	return a, nil
}

// Close stops the frame loop, releases the store and silences audio
func (a *app) Close() {
	a.loop.Stop()
	if err := a.scene.Close(); err != nil {
		log.Printf("close snapshot store: %v", err)
	}
	a.sound.Cleanup()
}
