package engine

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// FrameFunc is invoked once per frame with elapsed seconds
type FrameFunc func(dt float64)

// Handle identifies a registered frame task
// Zero Handle never refers to a task
type Handle struct {
	id ulid.ULID
}

// IsZero reports whether the handle was never issued
func (h Handle) IsZero() bool {
	return h.id == (ulid.ULID{})
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(none)"
	}
	return h.id.String()
}

// TaskInfo describes a registered task
type TaskInfo struct {
	Handle   Handle
	Name     string
	Priority int
}

type task struct {
	info      TaskInfo
	fn        FrameFunc
	cancelled bool
}

// Scheduler runs registered frame tasks in ascending priority, ties in registration order
type Scheduler struct {
	mu    sync.Mutex
	tasks []*task
	byID  map[ulid.ULID]*task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[ulid.ULID]*task),
	}
}

// Register adds fn at priority and returns its handle
func (s *Scheduler) Register(name string, priority int, fn FrameFunc) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := Handle{id: ulid.Make()}
	t := &task{
		info: TaskInfo{Handle: h, Name: name, Priority: priority},
		fn:   fn,
	}
	s.byID[h.id] = t

	// Insertion keeps the slice sorted, small N
	i := len(s.tasks)
	for i > 0 && s.tasks[i-1].info.Priority > priority {
		i--
	}
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t

	return h
}

// Cancel removes the task, returns false if the handle is unknown or already cancelled
// Safe to call any number of times, including from inside a running task
func (s *Scheduler) Cancel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[h.id]
	if !ok {
		return false
	}
	t.cancelled = true
	delete(s.byID, h.id)
	for i, cur := range s.tasks {
		if cur == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return true
}

// Active reports whether the handle refers to a registered task
func (s *Scheduler) Active(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[h.id]
	return ok
}

// Len returns the number of registered tasks
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Tasks returns registered tasks in execution order
func (s *Scheduler) Tasks() []TaskInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TaskInfo, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.info
	}
	return out
}

// Tick runs one frame
// Tasks registered during the frame run from the next frame, tasks cancelled during it are skipped
func (s *Scheduler) Tick(dt float64) {
	s.mu.Lock()
	snapshot := make([]*task, len(s.tasks))
	copy(snapshot, s.tasks)
	s.mu.Unlock()

	for _, t := range snapshot {
		s.mu.Lock()
		skip := t.cancelled
		s.mu.Unlock()
		if skip {
			continue
		}
		t.fn(dt)
	}
}
