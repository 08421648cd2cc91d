// Package scene moves the installation between rooms.
//
// The Manager is a two-state machine: Idle before the first load, then
// RoomLoaded at some coordinate. Every transition tears the previous room
// down through the installation before the next one is built, so exactly one
// shape, motion and color are active at a time.
package scene

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/room"
)

// ErrNotLoaded is returned by operations that need a loaded room
var ErrNotLoaded = errors.New("scene: no room loaded")

// State of the manager
type State uint8

const (
	Idle State = iota
	RoomLoaded
	// Suspended keeps the coordinate while the viewer is outside the installation
	Suspended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RoomLoaded:
		return "loaded"
	case Suspended:
		return "suspended"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Revisit decides how a room seen before is rebuilt
type Revisit uint8

const (
	// Regenerate rebuilds from the identity, random shapes come out different
	Regenerate Revisit = iota
	// Restore re-applies the stored transforms and materials, motion restarts from the identity
	Restore
)

func (r Revisit) String() string {
	if r == Restore {
		return "restore"
	}
	return "regenerate"
}

// ParseRevisit accepts "regenerate" or "restore"
func ParseRevisit(s string) (Revisit, error) {
	switch s {
	case "", "regenerate":
		return Regenerate, nil
	case "restore":
		return Restore, nil
	default:
		return 0, fmt.Errorf("unknown revisit policy %q", s)
	}
}

// Override is a fixed room that replaces identity-driven generation at one coordinate
type Override struct {
	// Systems run every frame while the room is loaded
	Systems []engine.FrameFunc
	// Setup creates the room's own entities, destroyed on leave
	Setup []func(w *engine.World) core.Entity
}

// Observer is notified after each completed load
type Observer interface {
	RoomLoaded(coord room.Coordinate, sel installation.Selection, revisit bool)
}

// Options configure a Manager
type Options struct {
	Revisit  Revisit
	Store    SnapshotStore
	Observer Observer
}

// Manager owns room transitions for one installation
type Manager struct {
	inst  *installation.Installation
	world *engine.World
	opts  Options

	mu        sync.Mutex
	state     State
	current   room.Coordinate
	overrides map[room.Coordinate]Override
	visited   mapset.Set[string]
	counter   int
	selection installation.Selection

	overrideHandles  []engine.Handle
	overrideEntities []core.Entity
}

// NewManager creates an idle manager, a nil store defaults to memory
func NewManager(world *engine.World, inst *installation.Installation, opts Options) *Manager {
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	return &Manager{
		inst:      inst,
		world:     world,
		opts:      opts,
		overrides: make(map[room.Coordinate]Override),
		visited:   mapset.New[string](),
	}
}

// LoadDefault loads the origin room
func (m *Manager) LoadDefault(ctx context.Context) error {
	return m.TransitionTo(ctx, room.Origin)
}

// TransitionTo loads coord, a no-op when coord is already loaded
func (m *Manager) TransitionTo(ctx context.Context, coord room.Coordinate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == RoomLoaded && m.current.Equal(coord) {
		log.Printf("scene: room %s is already loaded", coord.ID())
		return nil
	}
	return m.load(ctx, coord)
}

// Reload rebuilds the current coordinate, used when the viewer comes back inside
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Idle {
		return ErrNotLoaded
	}
	return m.load(ctx, m.current)
}

// load must be called with m.mu held
func (m *Manager) load(ctx context.Context, coord room.Coordinate) error {
	if err := m.teardown(ctx); err != nil {
		log.Printf("scene: teardown: %v", err)
	}

	id := coord.ID()
	m.current = coord
	m.state = RoomLoaded
	m.counter++
	revisit := m.visited.Has(id)
	m.visited.Put(id)
	log.Printf("scene: loading room at %s with ID %s", coord, id)

	if ov, ok := m.overrides[coord]; ok {
		m.activateOverride(coord, ov)
		m.selection = installation.Selection{ID: id}
		m.notify(coord, revisit)
		return nil
	}

	sel, err := m.inst.Select(id)
	if err != nil {
		log.Printf("scene: selection for %s: %v", id, err)
	}
	m.selection = sel

	restored := false
	if revisit && m.opts.Revisit == Restore {
		snap, ok, err := m.opts.Store.Load(ctx, id)
		switch {
		case err != nil:
			log.Printf("scene: load snapshot %s: %v", id, err)
		case ok:
			if err := m.inst.Restore(snap); err != nil {
				log.Printf("scene: restore %s: %v", id, err)
			} else {
				restored = true
			}
		}
	}

	if !restored {
		if _, err := m.inst.UpdateShape(id); err != nil && !errors.Is(err, installation.ErrNotConfigured) {
			return fmt.Errorf("update shape: %w", err)
		}
	}
	if _, err := m.inst.RunMotion(id); err != nil && !errors.Is(err, installation.ErrNotConfigured) {
		return fmt.Errorf("run motion: %w", err)
	}
	m.inst.PlaySpeech(m.counter - 1)
	if _, err := m.inst.RunColor(id); err != nil && !errors.Is(err, installation.ErrNotConfigured) {
		return fmt.Errorf("run color: %w", err)
	}
	if _, err := m.inst.PlayAudio(id); err != nil && !errors.Is(err, installation.ErrNotConfigured) {
		return fmt.Errorf("play audio: %w", err)
	}

	m.notify(coord, revisit)
	return nil
}

func (m *Manager) notify(coord room.Coordinate, revisit bool) {
	if m.opts.Observer != nil {
		m.opts.Observer.RoomLoaded(coord, m.selection, revisit)
	}
}

// teardown must be called with m.mu held
func (m *Manager) teardown(ctx context.Context) error {
	var err error
	if m.state == RoomLoaded && m.opts.Revisit == Restore {
		if _, isOverride := m.overrides[m.current]; !isOverride {
			err = m.opts.Store.Save(ctx, m.inst.Snapshot(m.current.ID()))
		}
	}

	for _, h := range m.overrideHandles {
		m.world.Scheduler.Cancel(h)
	}
	m.overrideHandles = nil
	for _, e := range m.overrideEntities {
		m.world.DestroyEntity(e)
	}
	m.overrideEntities = nil

	m.inst.Clear()
	return err
}

func (m *Manager) activateOverride(coord room.Coordinate, ov Override) {
	for i, fn := range ov.Systems {
		name := fmt.Sprintf("system-%s-%d", coord, i)
		m.overrideHandles = append(m.overrideHandles, m.world.Scheduler.Register(name, 0, fn))
	}
	for _, setup := range ov.Setup {
		m.overrideEntities = append(m.overrideEntities, setup(m.world))
	}
}

// Suspend tears the room down but keeps its coordinate for Reload
func (m *Manager) Suspend(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != RoomLoaded {
		return
	}
	if err := m.teardown(ctx); err != nil {
		log.Printf("scene: suspend: %v", err)
	}
	m.state = Suspended
}

// Resume reloads a suspended room, other states are left alone
func (m *Manager) Resume(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Suspended {
		return nil
	}
	return m.load(ctx, m.current)
}

// AddOverride registers a fixed room at coord
func (m *Manager) AddOverride(coord room.Coordinate, ov Override) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[coord] = ov
}

// CurrentID returns the loaded room identity, DefaultID while idle
func (m *Manager) CurrentID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Idle {
		return room.DefaultID
	}
	return m.current.ID()
}

// Current returns the loaded coordinate, false while idle
func (m *Manager) Current() (room.Coordinate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.state != Idle
}

// State returns the current state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Selection returns what the current room selected
func (m *Manager) Selection() installation.Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection
}

// RoomCounter counts loads since creation, it drives the speech cue
func (m *Manager) RoomCounter() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counter
}

// Visited reports whether roomID was loaded before
func (m *Manager) Visited(roomID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visited.Has(roomID)
}

// VisitedCount returns the number of distinct rooms loaded
func (m *Manager) VisitedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visited.Size()
}

// Close releases the snapshot store
func (m *Manager) Close() error {
	return m.opts.Store.Close()
}
