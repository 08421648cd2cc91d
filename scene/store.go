package scene

import (
	"context"
	"sync"

	"github.com/lixenwraith/swarm-installation/installation"
)

// SnapshotStore keeps room snapshots for the restore revisit policy
type SnapshotStore interface {
	Save(ctx context.Context, s installation.Snapshot) error
	Load(ctx context.Context, roomID string) (installation.Snapshot, bool, error)
	Close() error
}

// MemoryStore holds snapshots for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]installation.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]installation.Snapshot)}
}

func (m *MemoryStore) Save(_ context.Context, s installation.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[s.RoomID] = s
	return nil
}

func (m *MemoryStore) Load(_ context.Context, roomID string) (installation.Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.rooms[roomID]
	return s, ok, nil
}

// Len returns the number of stored rooms
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

func (m *MemoryStore) Close() error {
	return nil
}
