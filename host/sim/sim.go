// Package sim is an in-process host backed by engine stores
package sim

import (
	"strings"
	"sync"

	"github.com/lixenwraith/swarm-installation/audio"
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// maxParentDepth bounds parent chain walks so a cycle cannot hang a frame
const maxParentDepth = 16

var _ host.Host = (*Host)(nil)

// Host keeps rendered state in component stores registered on the world
type Host struct {
	world *engine.World
	sound *audio.SoundManager

	Transforms  *engine.Store[component.TransformComponent]
	Parents     *engine.Store[component.ParentComponent]
	Materials   *engine.Store[component.MaterialComponent]
	Meshes      *engine.Store[component.MeshComponent]
	Audio       *engine.Store[component.AudioComponent]
	Interactive *engine.Store[component.InteractiveComponent]

	mu       sync.RWMutex
	handlers map[core.Entity]func()
	player   vmath.Vec3
}

// New creates a host on world, sound may be nil for a silent host
func New(world *engine.World, sound *audio.SoundManager) *Host {
	if sound == nil {
		sound = audio.NewSoundManager()
	}
	h := &Host{
		world:       world,
		sound:       sound,
		Transforms:  engine.NewStore[component.TransformComponent](),
		Parents:     engine.NewStore[component.ParentComponent](),
		Materials:   engine.NewStore[component.MaterialComponent](),
		Meshes:      engine.NewStore[component.MeshComponent](),
		Audio:       engine.NewStore[component.AudioComponent](),
		Interactive: engine.NewStore[component.InteractiveComponent](),
		handlers:    make(map[core.Entity]func()),
	}
	world.RegisterStore(h.Transforms)
	world.RegisterStore(h.Parents)
	world.RegisterStore(h.Materials)
	world.RegisterStore(h.Meshes)
	world.RegisterStore(h.Audio)
	world.RegisterStore(h.Interactive)
	return h
}

// Sound returns the backing sound manager
func (h *Host) Sound() *audio.SoundManager {
	return h.sound
}

// --- Transforms ---

func (h *Host) SetTransform(e core.Entity, t component.TransformComponent) {
	h.Transforms.Set(e, t)
}

func (h *Host) Transform(e core.Entity) (component.TransformComponent, bool) {
	return h.Transforms.Get(e)
}

func (h *Host) SetParent(child, parent core.Entity) {
	h.Parents.Set(child, component.ParentComponent{Parent: parent})
}

// WorldPosition composes the parent chain: parent rotation and scale apply to child offsets
func (h *Host) WorldPosition(e core.Entity) vmath.Vec3 {
	t, ok := h.Transforms.Get(e)
	if !ok {
		t = component.NewTransform()
	}
	pos := t.Position

	cur := e
	for range maxParentDepth {
		link, ok := h.Parents.Get(cur)
		if !ok {
			break
		}
		pt, ok := h.Transforms.Get(link.Parent)
		if !ok {
			break
		}
		scaled := vmath.V3(pos[0]*pt.Scale[0], pos[1]*pt.Scale[1], pos[2]*pt.Scale[2])
		pos = pt.Position.Add(pt.Rotation.Rotate(scaled))
		cur = link.Parent
	}
	return pos
}

// --- Interaction ---

func (h *Host) OnClick(e core.Entity, label string, maxDistance float64, fn func()) {
	h.Interactive.Set(e, component.InteractiveComponent{Label: label, MaxDistance: maxDistance})

	h.mu.Lock()
	h.handlers[e] = fn
	h.mu.Unlock()
}

// Click simulates a pointer press on e, honoring the registered max distance
// Returns whether a handler ran
func (h *Host) Click(e core.Entity) bool {
	info, ok := h.Interactive.Get(e)
	if !ok {
		return false
	}
	h.mu.RLock()
	fn := h.handlers[e]
	h.mu.RUnlock()
	if fn == nil {
		return false
	}
	if vmath.Distance(h.Position(), h.WorldPosition(e)) > info.MaxDistance {
		return false
	}
	fn()
	return true
}

// Hover returns the label of the nearest clickable entity within reach
func (h *Host) Hover() (core.Entity, string, bool) {
	player := h.Position()
	best, label, bestDist := core.Entity(0), "", -1.0
	for _, e := range h.Interactive.Entities() {
		info, _ := h.Interactive.Get(e)
		d := vmath.Distance(player, h.WorldPosition(e))
		if d > info.MaxDistance {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, label, bestDist = e, info.Label, d
		}
	}
	return best, label, bestDist >= 0
}

// --- Materials ---

func (h *Host) SetMaterial(e core.Entity, m component.MaterialComponent) {
	h.Materials.Set(e, m)
}

func (h *Host) SetMesh(e core.Entity, mesh string) {
	h.Meshes.Set(e, component.MeshComponent{Shape: mesh})
}

func (h *Host) ClearMesh(e core.Entity) {
	h.Meshes.Remove(e)
}

// --- Audio ---

// Play attaches clip to emitter e, replacing whatever e was playing
func (h *Host) Play(e core.Entity, clip string, loop bool, volume float64) {
	if prev, ok := h.Audio.Get(e); ok && prev.Loop && prev.Playing && prev.Clip != clip {
		h.sound.Stop(prev.Clip)
	}
	h.Audio.Set(e, component.AudioComponent{Clip: clip, Loop: loop, Volume: volume, Playing: true})

	if loop {
		h.sound.PlayLoop(clip, volume)
		return
	}
	d := parameter.ChimeDuration
	if strings.HasPrefix(clip, "speech/") {
		d = parameter.SpeechDuration
	}
	h.sound.PlayOnce(clip, volume, d)
}

func (h *Host) Stop(e core.Entity) {
	a, ok := h.Audio.Get(e)
	if !ok || !a.Playing {
		return
	}
	if a.Loop {
		h.sound.Stop(a.Clip)
	}
	a.Playing = false
	h.Audio.Set(e, a)
}

// --- Player ---

func (h *Host) Position() vmath.Vec3 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.player
}

func (h *Host) Teleport(p vmath.Vec3) {
	h.mu.Lock()
	h.player = p
	h.mu.Unlock()
}
