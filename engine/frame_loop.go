package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/swarm-installation/core"
)

// MaxFrameDelta caps a single frame step so a stalled host doesn't teleport the swarm
const MaxFrameDelta = 250 * time.Millisecond

// FrameObserver receives per-frame timings
type FrameObserver func(dt, took time.Duration)

// FrameLoop drives World.Update from a clock on a fixed tick
type FrameLoop struct {
	world    *World
	clock    Clock
	interval time.Duration
	observer FrameObserver

	mu   sync.Mutex
	last time.Time

	paused atomic.Bool
	frames atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameLoop creates a loop ticking every interval
func NewFrameLoop(world *World, clock Clock, interval time.Duration) *FrameLoop {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &FrameLoop{
		world:    world,
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
		stopChan: make(chan struct{}),
	}
}

// SetObserver installs a frame timing callback, must be called before Start
func (l *FrameLoop) SetObserver(fn FrameObserver) {
	l.observer = fn
}

// SetPaused freezes simulated time, resuming discards the paused interval
func (l *FrameLoop) SetPaused(paused bool) {
	l.paused.Store(paused)
	if !paused {
		l.mu.Lock()
		l.last = l.clock.Now()
		l.mu.Unlock()
	}
}

// Paused reports pause state
func (l *FrameLoop) Paused() bool {
	return l.paused.Load()
}

// Frames returns the number of frames stepped
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

// Step runs a single frame using the clock delta since the previous step
func (l *FrameLoop) Step() {
	l.mu.Lock()
	now := l.clock.Now()
	dt := now.Sub(l.last)
	l.last = now
	l.mu.Unlock()

	if l.paused.Load() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	start := time.Now()
	l.world.Update(dt)
	l.frames.Add(1)

	if l.observer != nil {
		l.observer(dt, time.Since(start))
	}
}

// Run steps frames until ctx is cancelled or Stop is called
func (l *FrameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.Step()
		}
	}
}

// Start runs the loop in a crash-guarded goroutine
func (l *FrameLoop) Start(ctx context.Context) {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(func() {
			defer l.wg.Done()
			l.Run(ctx)
		})
	}
}

// Stop halts the loop and waits for the goroutine, safe to call repeatedly
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			l.wg.Wait()
		}
	})
}
