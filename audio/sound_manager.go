package audio

import (
	"log"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/swarm-installation/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays ambience loops and one-shot cues
// Clips are synthesized stand-ins keyed by name, the installation never loads files
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string]*beep.Ctrl
	active      map[string]bool
	oneShots    int
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		loops:  make(map[string]*beep.Ctrl),
		active: make(map[string]bool),
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for clip := range sm.active {
		delete(sm.active, clip)
	}

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for clip, ctrl := range sm.loops {
		ctrl.Paused = true
		delete(sm.loops, clip)
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlayLoop starts the ambience drone for clip, already playing clips are not restarted
func (sm *SoundManager) PlayLoop(clip string, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.active[clip] {
		return
	}
	sm.active[clip] = true

	if !sm.initialized {
		return
	}

	ctrl := newLoopStreamer(clip, volume)

	speaker.Lock()
	sm.loops[clip] = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// PlayOnce plays a short cue for clip
func (sm *SoundManager) PlayOnce(clip string, volume float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.oneShots++
	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(d), NewChimeGenerator(sampleRate, ChimeFrequency(clip)))

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, volume))
	speaker.Unlock()
}

// Stop halts the loop for clip
func (sm *SoundManager) Stop(clip string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.active, clip)

	ctrl, ok := sm.loops[clip]
	if !ok {
		return
	}
	delete(sm.loops, clip)

	if !sm.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

// Active returns the looping clips in name order
func (sm *SoundManager) Active() []string {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	out := make([]string, 0, len(sm.active))
	for clip := range sm.active {
		out = append(out, clip)
	}
	slices.Sort(out)
	return out
}

// Playing reports whether clip is looping
func (sm *SoundManager) Playing(clip string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.active[clip]
}

// OneShots returns the number of cues requested since creation
func (sm *SoundManager) OneShots() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.oneShots
}

// Initialized reports whether a device is attached
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// TryInitialize attaches a device when enabled, falling back to silent mode on failure
func (sm *SoundManager) TryInitialize(enabled bool) {
	if !enabled {
		return
	}
	if err := sm.Initialize(); err != nil {
		log.Printf("audio: running silent: %v", err)
	}
}

// newLoopStreamer builds the pausable ambience chain for clip
// The drone never reports exhaustion, so it loops without beep.Loop
func newLoopStreamer(clip string, volume float64) *beep.Ctrl {
	drone := NewDroneGenerator(sampleRate, DroneFrequency(clip))
	return &beep.Ctrl{Streamer: newVolume(drone, volume)}
}

// newVolume scales s by vol, math.Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
