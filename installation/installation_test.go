package installation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host/sim"
	"github.com/lixenwraith/swarm-installation/motion"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/room"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/shape"
	"github.com/lixenwraith/swarm-installation/vmath"
)

func newTestInstallation(t *testing.T, count int) (*Installation, *sim.Host, *engine.World) {
	t.Helper()
	w := engine.NewWorld()
	h := sim.New(w, nil)
	cfg := DefaultConfig()
	cfg.Count = count
	return New(w, h, cfg), h, w
}

func TestNewBuildsParentedPool(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 12)
	require.Equal(t, 12, inst.Count())
	assert.Equal(t, 12, inst.Swarm.Len())

	for i, e := range inst.Entities() {
		sc, ok := inst.Swarm.Get(e)
		require.True(t, ok)
		assert.Equal(t, i, sc.Slot)

		p, ok := h.Parents.Get(e)
		require.True(t, ok)
		assert.Equal(t, inst.Parent(), p.Parent)

		m, ok := h.Materials.Get(e)
		require.True(t, ok)
		assert.Equal(t, palette.Default(), m)
	}

	pt, ok := h.Transform(inst.Parent())
	require.True(t, ok)
	assert.Equal(t, vmath.V3(8, 10, 8), pt.Position)
}

func TestRegisterRejectsEmptyLists(t *testing.T) {
	inst, _, _ := newTestInstallation(t, 1)
	assert.ErrorIs(t, inst.RegisterShapes(), seed.ErrNoCandidates)
	assert.ErrorIs(t, inst.RegisterMotions(), seed.ErrNoCandidates)
	assert.ErrorIs(t, inst.RegisterColors(), seed.ErrNoCandidates)
	assert.ErrorIs(t, inst.RegisterAmbience(), seed.ErrNoCandidates)
	assert.Error(t, inst.RegisterShapes(shape.Kind(200)))
}

func TestUnconfiguredOperationsAreNoOps(t *testing.T) {
	inst, h, w := newTestInstallation(t, 4)
	id := room.UniqueID(1, 2, 3)
	before := inst.Snapshot(id)

	_, err := inst.UpdateShape(id)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = inst.RunMotion(id)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = inst.RunColor(id)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = inst.PlayAudio(id)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = inst.Select(id)
	assert.ErrorIs(t, err, seed.ErrNoCandidates)

	assert.Equal(t, before, inst.Snapshot(id))
	assert.Zero(t, w.Scheduler.Len())
	assert.Empty(t, h.Sound().Active())
}

func TestSelectUsesWindows(t *testing.T) {
	inst, _, _ := newTestInstallation(t, 1)
	inst.RegisterDefaults()

	id := "12345678901234567890abcd"
	sel, err := inst.Select(id)
	require.NoError(t, err)

	si, _ := seed.SelectIndex(id, 0, 3, len(shape.All()))
	mi, _ := seed.SelectIndex(id, 0, 6, len(motion.All()))
	ci, _ := seed.SelectIndex(id, 10, 12, len(palette.All()))
	assert.Equal(t, shape.All()[si], sel.Shape)
	assert.Equal(t, motion.All()[mi], sel.Motion)
	assert.Equal(t, palette.All()[ci], sel.Color)
	assert.NotEmpty(t, sel.Ambience)

	again, err := inst.Select(id)
	require.NoError(t, err)
	assert.Equal(t, sel, again)
}

func TestUpdateShapeAppliesArrangement(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 30)
	require.NoError(t, inst.RegisterShapes(shape.Sphere))

	id := room.UniqueID(4, 0, -2)
	for _, e := range inst.Entities() {
		inst.Swarm.Update(e, func(sc *component.SwarmComponent) { sc.Deviation = vmath.V3(1, 1, 1) })
	}

	kind, err := inst.UpdateShape(id)
	require.NoError(t, err)
	assert.Equal(t, shape.Sphere, kind)

	want := shape.Layout(shape.Derive(shape.Sphere, id, seed.NormalizeParsedWidth), 30, nil)
	for i, e := range inst.Entities() {
		assert.Equal(t, want.Transforms[i], inst.Local(i))
		sc, _ := inst.Swarm.Get(e)
		assert.Equal(t, vmath.Vec3{}, sc.Deviation)
		mesh, ok := h.Meshes.Get(e)
		require.True(t, ok)
		assert.Equal(t, shape.Mesh, mesh.Shape)
	}
}

func TestLissajousScalesParent(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 10)
	require.NoError(t, inst.RegisterShapes(shape.Lissajous))
	id := room.UniqueID(0, 1, 0)

	_, err := inst.UpdateShape(id)
	require.NoError(t, err)

	want := shape.Derive(shape.Lissajous, id, seed.NormalizeParsedWidth).(shape.LissajousParams).ParentScale
	pt, _ := h.Transform(inst.Parent())
	assert.InDelta(t, want, pt.Scale[0], 1e-12)

	inst.Clear()
	pt, _ = h.Transform(inst.Parent())
	assert.Equal(t, vmath.One(), pt.Scale)
}

func TestRunMotionAndClear(t *testing.T) {
	inst, h, w := newTestInstallation(t, 8)
	inst.RegisterDefaults()
	id := room.UniqueID(2, 2, 2)

	_, err := inst.UpdateShape(id)
	require.NoError(t, err)
	mh, err := inst.RunMotion(id)
	require.NoError(t, err)
	ch, err := inst.RunColor(id)
	require.NoError(t, err)
	clip, err := inst.PlayAudio(id)
	require.NoError(t, err)

	assert.True(t, w.Scheduler.Active(mh))
	assert.True(t, w.Scheduler.Active(ch))
	assert.Len(t, inst.Handles(), 2)
	assert.NotNil(t, inst.Motion())
	assert.Equal(t, []string{clip}, h.Sound().Active())

	inst.Clear()
	assert.False(t, w.Scheduler.Active(mh))
	assert.False(t, w.Scheduler.Active(ch))
	assert.Zero(t, w.Scheduler.Len())
	assert.Empty(t, inst.Handles())
	assert.Nil(t, inst.Motion())
	assert.Empty(t, h.Sound().Active())
	for _, e := range inst.Entities() {
		assert.False(t, h.Meshes.Has(e))
	}

	assert.NotPanics(t, inst.Clear)
}

func TestMusicPauseResume(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 1)
	inst.RegisterDefaults()
	clip, err := inst.PlayAudio(room.DefaultID)
	require.NoError(t, err)

	inst.StopMusic()
	assert.False(t, inst.MusicPlaying())
	assert.Empty(t, h.Sound().Active())

	inst.PlayMusic()
	assert.True(t, inst.MusicPlaying())
	assert.Equal(t, []string{clip}, h.Sound().Active())
}

func TestPlaySpeechWraps(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 1)
	first := inst.PlaySpeech(0)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, inst.PlaySpeech(len(parameter.SpeechClips)))
	assert.Equal(t, 2, h.Sound().OneShots())
}

func TestSnapshotRestore(t *testing.T) {
	inst, h, _ := newTestInstallation(t, 16)
	require.NoError(t, inst.RegisterShapes(shape.Random))
	require.NoError(t, inst.RegisterColors(palette.Gradient))
	id := room.UniqueID(9, 9, 9)

	_, err := inst.UpdateShape(id)
	require.NoError(t, err)
	_, err = inst.RunColor(id)
	require.NoError(t, err)
	snap := inst.Snapshot(id)

	inst.Clear()
	_, err = inst.UpdateShape(id)
	require.NoError(t, err)
	require.NotEqual(t, snap.Locals, inst.Snapshot(id).Locals)

	require.NoError(t, inst.Restore(snap))
	assert.Equal(t, snap, inst.Snapshot(id))
	m, _ := h.Materials.Get(inst.Entities()[3])
	assert.Equal(t, snap.Materials[3], m)

	snap.Locals = snap.Locals[:2]
	assert.ErrorIs(t, inst.Restore(snap), ErrSnapshotMismatch)
}
