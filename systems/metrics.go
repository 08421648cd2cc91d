package systems

import (
	"strings"

	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/metrics"
	"github.com/lixenwraith/swarm-installation/parameter"
)

// motionTaskPrefix matches the scheduler names of room motion systems
const motionTaskPrefix = "motion:"

// MetricsSystem samples scheduler state once per frame
type MetricsSystem struct {
	m     *metrics.Metrics
	sched *engine.Scheduler
}

func NewMetricsSystem(m *metrics.Metrics, sched *engine.Scheduler) *MetricsSystem {
	return &MetricsSystem{m: m, sched: sched}
}

var _ engine.System = (*MetricsSystem)(nil)

func (s *MetricsSystem) Name() string  { return "metrics" }
func (s *MetricsSystem) Priority() int { return parameter.PriorityMetrics }

func (s *MetricsSystem) Update(_ float64) {
	tasks := s.sched.Tasks()
	motions := 0
	for _, t := range tasks {
		if strings.HasPrefix(t.Name, motionTaskPrefix) {
			motions++
		}
	}
	s.m.Frames.Inc()
	s.m.Tasks.Set(float64(len(tasks)))
	s.m.ActiveMotions.Set(float64(motions))
}
