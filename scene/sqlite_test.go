package scene

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/vmath"
)

func sampleSnapshot(id string) installation.Snapshot {
	t := component.At(vmath.V3(1.25, -3.5, 0.1))
	t.Rotation = vmath.EulerDeg(10, 20, 30)
	return installation.Snapshot{
		RoomID:      id,
		Locals:      []component.TransformComponent{t, component.NewTransform()},
		Materials:   []component.MaterialComponent{palette.Default(), palette.Default()},
		ParentScale: 0.42,
	}
}

func TestSQLiteStorePersistAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	snap := sampleSnapshot("000111222333444555666777")
	require.NoError(t, store.Save(ctx, snap))
	snap.ParentScale = 0.5
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Close())

	reloaded, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reloaded.Close()
	assert.Equal(t, path, reloaded.Path())

	got, ok, err := reloaded.Load(ctx, snap.RoomID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snap, got)

	_, ok, err = reloaded.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreBadPayload(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "bad.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer store.Close()

	_, err = store.DB().Exec(`INSERT INTO snapshots(room_id, payload) VALUES('x', 'not-json')`)
	require.NoError(t, err)
	_, _, err = store.Load(context.Background(), "x")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	s, err := OpenStore("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = OpenStore("redis", "")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	snap := sampleSnapshot("a")
	require.NoError(t, s.Save(ctx, snap))
	got, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snap, got)
	assert.NoError(t, s.Close())
}
