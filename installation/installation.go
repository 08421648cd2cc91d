// Package installation is the explicit context a room is built in.
//
// An Installation owns the fixed swarm pool, the parent transform and the
// registered candidate lists. Room operations select from those lists by
// identity and register the resulting systems on the world scheduler.
package installation

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host"
	"github.com/lixenwraith/swarm-installation/motion"
	"github.com/lixenwraith/swarm-installation/palette"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/shape"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// ErrNotConfigured is returned by room operations whose candidate list was never registered
var ErrNotConfigured = errors.New("installation: candidates not registered")

// Installation is one swarm bound to a world and a host
type Installation struct {
	world *engine.World
	host  host.Host
	cfg   Config

	parent   core.Entity
	ambience core.Entity
	speech   core.Entity
	entities []core.Entity

	// Swarm holds the abstract per-slot state, keyed by pool entity
	Swarm *engine.Store[component.SwarmComponent]

	generator *shape.Generator

	mu           sync.Mutex
	shapes       []shape.Kind
	motions      []motion.Kind
	colors       []palette.Kind
	clips        []string
	handles      []engine.Handle
	motionSys    motion.System
	colorSys     palette.System
	materials    []component.MaterialComponent
	parentScale  float64
	ambienceClip string
	audioPlaying bool
}

// New creates the entity pool once and parents it under the installation transform
func New(world *engine.World, h host.Host, cfg Config) *Installation {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	inst := &Installation{
		world:       world,
		host:        h,
		cfg:         cfg,
		Swarm:       engine.NewStore[component.SwarmComponent](),
		generator:   shape.NewGenerator(cfg.Normalization),
		materials:   make([]component.MaterialComponent, cfg.Count),
		parentScale: 1,
	}
	world.RegisterStore(inst.Swarm)

	inst.parent = world.CreateEntity()
	h.SetTransform(inst.parent, component.At(cfg.Parent))

	inst.ambience = world.CreateEntity()
	h.SetTransform(inst.ambience, component.At(vmath.V3(0, parameter.AudioOffsetY, 0)))
	h.SetParent(inst.ambience, inst.parent)

	inst.speech = world.CreateEntity()
	h.SetTransform(inst.speech, component.At(vmath.V3(0, parameter.SpeechOffsetY, 0)))
	h.SetParent(inst.speech, inst.parent)

	inst.entities = world.CreateEntities(cfg.Count)
	def := palette.Default()
	for i, e := range inst.entities {
		inst.Swarm.Set(e, component.SwarmComponent{Slot: i, Local: component.NewTransform()})
		h.SetTransform(e, component.NewTransform())
		h.SetParent(e, inst.parent)
		h.SetMaterial(e, def)
		inst.materials[i] = def
	}
	return inst
}

// Config returns the configuration the installation was built with
func (inst *Installation) Config() Config {
	return inst.cfg
}

// Parent returns the installation parent entity
func (inst *Installation) Parent() core.Entity {
	return inst.parent
}

// ParentPosition is the configured parent position, unaffected by per-room scaling
func (inst *Installation) ParentPosition() vmath.Vec3 {
	return inst.cfg.Parent
}

// Entities returns the swarm pool in slot order
func (inst *Installation) Entities() []core.Entity {
	out := make([]core.Entity, len(inst.entities))
	copy(out, inst.entities)
	return out
}

// Host returns the host the installation renders through
func (inst *Installation) Host() host.Host {
	return inst.host
}

// Generator exposes the shape generator so callers can inject a random source
func (inst *Installation) Generator() *shape.Generator {
	return inst.generator
}

// --- motion.Swarm and palette.Target ---

func (inst *Installation) Count() int {
	return len(inst.entities)
}

func (inst *Installation) Local(i int) component.TransformComponent {
	sc, _ := inst.Swarm.Get(inst.entities[i])
	return sc.Local
}

func (inst *Installation) SetLocal(i int, t component.TransformComponent) {
	inst.Swarm.Update(inst.entities[i], func(sc *component.SwarmComponent) {
		sc.Local = t
	})
}

func (inst *Installation) SetMaterial(i int, m component.MaterialComponent) {
	inst.mu.Lock()
	inst.materials[i] = m
	inst.mu.Unlock()
	inst.host.SetMaterial(inst.entities[i], m)
}

// --- registration ---

// RegisterShapes replaces the shape candidates
func (inst *Installation) RegisterShapes(kinds ...shape.Kind) error {
	if len(kinds) == 0 {
		return fmt.Errorf("register shapes: %w", seed.ErrNoCandidates)
	}
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("register shapes: invalid kind %d", k)
		}
	}
	inst.mu.Lock()
	inst.shapes = append([]shape.Kind(nil), kinds...)
	inst.mu.Unlock()
	return nil
}

// RegisterMotions replaces the motion candidates
func (inst *Installation) RegisterMotions(kinds ...motion.Kind) error {
	if len(kinds) == 0 {
		return fmt.Errorf("register motions: %w", seed.ErrNoCandidates)
	}
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("register motions: invalid kind %d", k)
		}
	}
	inst.mu.Lock()
	inst.motions = append([]motion.Kind(nil), kinds...)
	inst.mu.Unlock()
	return nil
}

// RegisterColors replaces the color candidates
func (inst *Installation) RegisterColors(kinds ...palette.Kind) error {
	if len(kinds) == 0 {
		return fmt.Errorf("register colors: %w", seed.ErrNoCandidates)
	}
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("register colors: invalid kind %d", k)
		}
	}
	inst.mu.Lock()
	inst.colors = append([]palette.Kind(nil), kinds...)
	inst.mu.Unlock()
	return nil
}

// RegisterAmbience replaces the ambience clip candidates
func (inst *Installation) RegisterAmbience(clips ...string) error {
	if len(clips) == 0 {
		return fmt.Errorf("register ambience: %w", seed.ErrNoCandidates)
	}
	inst.mu.Lock()
	inst.clips = append([]string(nil), clips...)
	inst.mu.Unlock()
	return nil
}

// RegisterDefaults registers every shape, motion and color kind and the default ambience
func (inst *Installation) RegisterDefaults() {
	// Lists are non-empty so registration cannot fail
	_ = inst.RegisterShapes(shape.All()...)
	_ = inst.RegisterMotions(motion.All()...)
	_ = inst.RegisterColors(palette.All()...)
	_ = inst.RegisterAmbience(parameter.AmbienceClips...)
}

// --- room operations ---

// UpdateShape lays the swarm out for roomID and resets force-field deviation
func (inst *Installation) UpdateShape(roomID string) (shape.Kind, error) {
	inst.mu.Lock()
	shapes := inst.shapes
	inst.mu.Unlock()

	idx, err := inst.cfg.Windows.Shape.Select(roomID, len(shapes))
	if err != nil {
		log.Printf("installation: swarm shapes not set")
		return 0, ErrNotConfigured
	}
	kind := shapes[idx]

	arr := inst.generator.Generate(kind, roomID, len(inst.entities))
	for i, e := range inst.entities {
		t := arr.Transforms[i]
		inst.Swarm.Update(e, func(sc *component.SwarmComponent) {
			sc.Local = t
			sc.Deviation = vmath.Vec3{}
		})
		inst.host.SetMesh(e, shape.Mesh)
	}

	scale := 1.0
	if arr.ParentScale > 0 {
		scale = arr.ParentScale
	}
	inst.setParentScale(scale)
	return kind, nil
}

func (inst *Installation) setParentScale(scale float64) {
	inst.mu.Lock()
	inst.parentScale = scale
	inst.mu.Unlock()

	t := component.At(inst.cfg.Parent)
	t.Scale = vmath.Splat(scale)
	inst.host.SetTransform(inst.parent, t)
}

// RunMotion starts the motion system selected by roomID
func (inst *Installation) RunMotion(roomID string) (engine.Handle, error) {
	inst.mu.Lock()
	motions := inst.motions
	inst.mu.Unlock()

	idx, err := inst.cfg.Windows.Motion.Select(roomID, len(motions))
	if err != nil {
		log.Printf("installation: swarm systems not set")
		return engine.Handle{}, ErrNotConfigured
	}

	sys, err := motion.New(motions[idx], roomID, inst, inst.cfg.Normalization)
	if err != nil {
		return engine.Handle{}, fmt.Errorf("run motion: %w", err)
	}

	h := inst.world.Scheduler.Register("motion:"+sys.Kind().String(), parameter.PriorityMotion, sys.Update)

	inst.mu.Lock()
	inst.motionSys = sys
	inst.handles = append(inst.handles, h)
	inst.mu.Unlock()
	return h, nil
}

// RunColor starts the color function selected by roomID
func (inst *Installation) RunColor(roomID string) (engine.Handle, error) {
	inst.mu.Lock()
	colors := inst.colors
	inst.mu.Unlock()

	idx, err := inst.cfg.Windows.Color.Select(roomID, len(colors))
	if err != nil {
		log.Printf("installation: color system not set")
		return engine.Handle{}, ErrNotConfigured
	}

	sys, err := palette.New(colors[idx], roomID, inst, inst.cfg.Normalization)
	if err != nil {
		return engine.Handle{}, fmt.Errorf("run color: %w", err)
	}

	h := inst.world.Scheduler.Register("color:"+sys.Kind().String(), parameter.PriorityColor, sys.Update)

	inst.mu.Lock()
	inst.colorSys = sys
	inst.handles = append(inst.handles, h)
	inst.mu.Unlock()
	return h, nil
}

// PlayAudio loops the ambience clip selected by roomID
func (inst *Installation) PlayAudio(roomID string) (string, error) {
	inst.mu.Lock()
	clips := inst.clips
	inst.mu.Unlock()

	idx, err := inst.cfg.Windows.Ambience.Select(roomID, len(clips))
	if err != nil {
		log.Printf("installation: ambience not set")
		return "", ErrNotConfigured
	}
	clip := clips[idx]

	inst.host.Play(inst.ambience, clip, true, parameter.AmbienceVolume)

	inst.mu.Lock()
	inst.ambienceClip = clip
	inst.audioPlaying = true
	inst.mu.Unlock()
	return clip, nil
}

// PlaySpeech plays the speech cue for the counter-th room visited, wrapping past the list
func (inst *Installation) PlaySpeech(counter int) string {
	if len(parameter.SpeechClips) == 0 || counter < 0 {
		return ""
	}
	clip := parameter.SpeechClips[counter%len(parameter.SpeechClips)]
	inst.host.Play(inst.speech, clip, false, parameter.SpeechVolume)
	return clip
}

// PlayMusic resumes the current ambience if it was paused
func (inst *Installation) PlayMusic() {
	inst.mu.Lock()
	clip, playing := inst.ambienceClip, inst.audioPlaying
	inst.mu.Unlock()
	if clip == "" || playing {
		return
	}
	inst.host.Play(inst.ambience, clip, true, parameter.AmbienceVolume)

	inst.mu.Lock()
	inst.audioPlaying = true
	inst.mu.Unlock()
}

// StopMusic pauses the ambience, keeping the clip for PlayMusic
func (inst *Installation) StopMusic() {
	inst.mu.Lock()
	playing := inst.audioPlaying
	inst.audioPlaying = false
	inst.mu.Unlock()
	if playing {
		inst.host.Stop(inst.ambience)
	}
}

// MusicPlaying reports whether ambience is currently audible
func (inst *Installation) MusicPlaying() bool {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.audioPlaying
}

// Clear cancels every running system, resets the parent transform and silences both emitters
// Safe to call repeatedly
func (inst *Installation) Clear() {
	inst.mu.Lock()
	handles := inst.handles
	inst.handles = nil
	inst.motionSys = nil
	inst.colorSys = nil
	inst.ambienceClip = ""
	inst.audioPlaying = false
	inst.mu.Unlock()

	for _, h := range handles {
		inst.world.Scheduler.Cancel(h)
	}

	for _, e := range inst.entities {
		inst.host.ClearMesh(e)
	}
	inst.setParentScale(1)

	inst.host.Stop(inst.ambience)
	inst.host.Stop(inst.speech)
}

// Handles returns the handles of systems started since the last Clear
func (inst *Installation) Handles() []engine.Handle {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return append([]engine.Handle(nil), inst.handles...)
}

// Motion returns the running motion system, nil when none
func (inst *Installation) Motion() motion.System {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.motionSys
}

// Color returns the running color function, nil when none
func (inst *Installation) Color() palette.System {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.colorSys
}

// AmbienceClip returns the clip chosen for the current room
func (inst *Installation) AmbienceClip() string {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.ambienceClip
}
