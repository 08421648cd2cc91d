package scene

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host/sim"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/motion"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/room"
	"github.com/lixenwraith/swarm-installation/shape"
)

type fixture struct {
	world *engine.World
	host  *sim.Host
	inst  *installation.Installation
	mgr   *Manager
}

func newFixture(t *testing.T, opts Options, shapes ...shape.Kind) *fixture {
	t.Helper()
	w := engine.NewWorld()
	h := sim.New(w, nil)
	cfg := installation.DefaultConfig()
	cfg.Count = 24
	inst := installation.New(w, h, cfg)
	inst.RegisterDefaults()
	if len(shapes) > 0 {
		require.NoError(t, inst.RegisterShapes(shapes...))
	}
	return &fixture{world: w, host: h, inst: inst, mgr: NewManager(w, inst, opts)}
}

func (f *fixture) locals() []any {
	out := make([]any, f.inst.Count())
	for i := range out {
		out[i] = f.inst.Local(i)
	}
	return out
}

type recordingObserver struct {
	loads    []room.Coordinate
	revisits []bool
}

func (o *recordingObserver) RoomLoaded(c room.Coordinate, _ installation.Selection, revisit bool) {
	o.loads = append(o.loads, c)
	o.revisits = append(o.revisits, revisit)
}

func deterministicShapes() []shape.Kind {
	var out []shape.Kind
	for _, k := range shape.All() {
		if k.Deterministic() {
			out = append(out, k)
		}
	}
	return out
}

func TestIdleManager(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Equal(t, Idle, f.mgr.State())
	assert.Equal(t, room.DefaultID, f.mgr.CurrentID())
	_, ok := f.mgr.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, f.mgr.Reload(context.Background()), ErrNotLoaded)
}

func TestLoadDefaultAndTransition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	require.NoError(t, f.mgr.LoadDefault(ctx))
	assert.Equal(t, RoomLoaded, f.mgr.State())
	assert.Equal(t, room.DefaultID, f.mgr.CurrentID())

	east := room.New(-1, 0, 0)
	require.NoError(t, f.mgr.TransitionTo(ctx, east))
	cur, ok := f.mgr.Current()
	require.True(t, ok)
	assert.Equal(t, east, cur)
	assert.Equal(t, east.ID(), f.mgr.CurrentID())
	assert.Equal(t, 2, f.mgr.RoomCounter())
	assert.Equal(t, east.ID(), f.mgr.Selection().ID)
}

func TestTransitionToLoadedRoomIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	c := room.New(3, 0, 1)

	require.NoError(t, f.mgr.TransitionTo(ctx, c))
	handles := f.inst.Handles()

	require.NoError(t, f.mgr.TransitionTo(ctx, c))
	assert.Equal(t, handles, f.inst.Handles())
	assert.Equal(t, 1, f.mgr.RoomCounter())
	for _, h := range handles {
		assert.True(t, f.world.Scheduler.Active(h))
	}
}

func TestTransitionCancelsPreviousSystems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	require.NoError(t, f.mgr.TransitionTo(ctx, room.New(0, 0, 1)))
	old := f.inst.Handles()
	require.Len(t, old, 2)

	require.NoError(t, f.mgr.TransitionTo(ctx, room.New(0, 0, 2)))
	for _, h := range old {
		assert.False(t, f.world.Scheduler.Active(h))
	}
	// One motion and one color, nothing left over from the previous room
	assert.Equal(t, 2, f.world.Scheduler.Len())
	assert.Len(t, f.host.Sound().Active(), 1)
}

func TestRoundTripReproducesRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{}, deterministicShapes()...)
	a, b := room.New(2, 0, -1), room.New(3, 0, -1)

	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	selA := f.mgr.Selection()
	localsA := f.locals()

	require.NoError(t, f.mgr.TransitionTo(ctx, b))
	require.NoError(t, f.mgr.TransitionTo(ctx, a))

	assert.Equal(t, selA, f.mgr.Selection())
	assert.Equal(t, localsA, f.locals())
	assert.True(t, f.mgr.Visited(a.ID()))
	assert.Equal(t, 2, f.mgr.VisitedCount())
}

func TestRevisitRegenerateRerollsRandom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Revisit: Regenerate}, shape.Random)
	a, b := room.New(5, 0, 0), room.New(6, 0, 0)

	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	first := f.locals()
	require.NoError(t, f.mgr.TransitionTo(ctx, b))
	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	assert.NotEqual(t, first, f.locals())
}

func TestRevisitRestore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	f := newFixture(t, Options{Revisit: Restore, Store: store}, shape.Random)
	require.NoError(t, f.inst.RegisterMotions(motion.Wiggle))
	a, b := room.New(5, 0, 0), room.New(6, 0, 0)

	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	f.world.Update(100 * time.Millisecond) // stored state is not the fresh layout
	leftAt := f.locals()

	require.NoError(t, f.mgr.TransitionTo(ctx, b))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	assert.Equal(t, leftAt, f.locals())
	assert.Equal(t, 2, store.Len())
}

func TestOverrideRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	special := room.New(0, 0, 7)

	ticks := 0
	var created core.Entity
	f.mgr.AddOverride(special, Override{
		Systems: []engine.FrameFunc{func(float64) { ticks++ }},
		Setup: []func(w *engine.World) core.Entity{func(w *engine.World) core.Entity {
			created = w.CreateEntity()
			f.host.SetMesh(created, "llama")
			return created
		}},
	})

	require.NoError(t, f.mgr.TransitionTo(ctx, special))
	assert.Empty(t, f.inst.Handles())
	f.world.Update(33 * time.Millisecond)
	assert.Equal(t, 1, ticks)
	assert.True(t, f.host.Meshes.Has(created))

	require.NoError(t, f.mgr.TransitionTo(ctx, room.Origin))
	f.world.Update(33 * time.Millisecond)
	assert.Equal(t, 1, ticks)
	assert.False(t, f.host.Meshes.Has(created))
	assert.Len(t, f.inst.Handles(), 2)
}

func TestSuspendResume(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	c := room.New(1, 1, 1)
	require.NoError(t, f.mgr.TransitionTo(ctx, c))

	f.mgr.Suspend(ctx)
	assert.Equal(t, Suspended, f.mgr.State())
	assert.Zero(t, f.world.Scheduler.Len())
	assert.Empty(t, f.host.Sound().Active())
	assert.Equal(t, c.ID(), f.mgr.CurrentID())

	f.mgr.Suspend(ctx)

	require.NoError(t, f.mgr.Resume(ctx))
	assert.Equal(t, RoomLoaded, f.mgr.State())
	assert.Equal(t, 2, f.world.Scheduler.Len())

	require.NoError(t, f.mgr.Resume(ctx))
	assert.Equal(t, 2, f.world.Scheduler.Len())
}

func TestObserverSeesRevisits(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	f := newFixture(t, Options{Observer: obs})
	a, b := room.New(0, 0, 1), room.New(0, 0, 2)

	require.NoError(t, f.mgr.TransitionTo(ctx, a))
	require.NoError(t, f.mgr.TransitionTo(ctx, b))
	require.NoError(t, f.mgr.TransitionTo(ctx, a))

	assert.Equal(t, []room.Coordinate{a, b, a}, obs.loads)
	assert.Equal(t, []bool{false, false, true}, obs.revisits)
}

func TestUnconfiguredInstallationStillLoads(t *testing.T) {
	w := engine.NewWorld()
	h := sim.New(w, nil)
	cfg := installation.DefaultConfig()
	cfg.Count = 3
	inst := installation.New(w, h, cfg)
	require.NoError(t, inst.RegisterMotions(motion.Wiggle))
	require.NoError(t, inst.RegisterColors(palette.Cycle))

	m := NewManager(w, inst, Options{})
	require.NoError(t, m.TransitionTo(context.Background(), room.New(1, 0, 0)))
	assert.Equal(t, RoomLoaded, m.State())
	assert.Equal(t, 2, w.Scheduler.Len())
}

func TestParseRevisit(t *testing.T) {
	r, err := ParseRevisit("restore")
	require.NoError(t, err)
	assert.Equal(t, Restore, r)
	r, err = ParseRevisit("")
	require.NoError(t, err)
	assert.Equal(t, Regenerate, r)
	_, err = ParseRevisit("rewind")
	assert.Error(t, err)
}
