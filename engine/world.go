// Package engine is the frame-driven ECS world the installation runs on
package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/swarm-installation/core"
)

// World owns entity identity, registered component stores and the frame scheduler
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	stores       []AnyStore

	Scheduler *Scheduler
	Time      *TimeResource

	updateMutex sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Scheduler:    NewScheduler(),
		Time:         &TimeResource{},
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// CreateEntities reserves n consecutive entity IDs
func (w *World) CreateEntities(n int) []core.Entity {
	out := make([]core.Entity, n)
	for i := range out {
		out[i] = w.CreateEntity()
	}
	return out
}

// RegisterStore makes a store participate in DestroyEntity and Clear
func (w *World) RegisterStore(s AnyStore) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stores = append(w.stores, s)
}

// DestroyEntity removes the entity from every registered store
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	stores := make([]AnyStore, len(w.stores))
	copy(stores, w.stores)
	w.mu.RUnlock()

	for _, s := range stores {
		s.Remove(e)
	}
}

// Clear empties every registered store, registered tasks are kept
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.stores {
		s.Clear()
	}
}

// AddSystem registers the system's Update on the scheduler at its priority
func (w *World) AddSystem(system System) Handle {
	return w.Scheduler.Register(system.Name(), system.Priority(), system.Update)
}

// RemoveSystem cancels a system, idempotent
func (w *World) RemoveSystem(h Handle) bool {
	return w.Scheduler.Cancel(h)
}

// RunSafe executes a function while holding the world's update lock
// Input handlers use it to mutate state between frames
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update advances time and runs one scheduler frame
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.Time.Advance(dt)
		w.Scheduler.Tick(dt.Seconds())
	})
}
