package engine

import (
	"sync"
	"time"
)

// Clock is the time source driving the frame loop
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns time.Now, which carries a monotonic reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// TimeResource is the frame clock shared by systems, updated before each scheduler tick
type TimeResource struct {
	mu          sync.RWMutex
	elapsed     time.Duration
	delta       time.Duration
	frameNumber int64
}

// Advance records a new frame of length dt
func (r *TimeResource) Advance(dt time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elapsed += dt
	r.delta = dt
	r.frameNumber++
}

// Elapsed is the accumulated simulated time
func (r *TimeResource) Elapsed() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elapsed
}

// Delta is the length of the last frame
func (r *TimeResource) Delta() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.delta
}

// FrameNumber is the count of frames run
func (r *TimeResource) FrameNumber() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frameNumber
}
