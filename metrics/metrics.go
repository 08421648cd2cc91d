// Package metrics exposes installation telemetry through Prometheus
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/room"
)

const namespace = "swarm"

// Metrics groups every collector on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	Frames        prometheus.Counter
	FrameDuration prometheus.Histogram
	Transitions   prometheus.Counter
	Revisits      prometheus.Counter
	ActiveMotions prometheus.Gauge
	Tasks         prometheus.Gauge
	Selections    *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames executed by the scheduler.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Wall time spent running one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		Transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_transitions_total",
			Help:      "Rooms loaded.",
		}),
		Revisits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_revisits_total",
			Help:      "Rooms loaded that had been visited before.",
		}),
		ActiveMotions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_motion_systems",
			Help:      "Motion systems currently registered.",
		}),
		Tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduled_tasks",
			Help:      "Frame tasks currently registered.",
		}),
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Room selections by category and kind.",
		}, []string{"category", "kind"}),
	}
	m.Registry.MustRegister(
		m.Frames,
		m.FrameDuration,
		m.Transitions,
		m.Revisits,
		m.ActiveMotions,
		m.Tasks,
		m.Selections,
	)
	return m
}

// RoomLoaded records a completed room load
func (m *Metrics) RoomLoaded(_ room.Coordinate, sel installation.Selection, revisit bool) {
	m.Transitions.Inc()
	if revisit {
		m.Revisits.Inc()
	}
	if sel.Ambience == "" {
		// Override rooms select nothing
		return
	}
	m.Selections.WithLabelValues("shape", sel.Shape.String()).Inc()
	m.Selections.WithLabelValues("motion", sel.Motion.String()).Inc()
	m.Selections.WithLabelValues("color", sel.Color.String()).Inc()
	m.Selections.WithLabelValues("ambience", sel.Ambience).Inc()
}

// ObserveFrame matches engine.FrameObserver
func (m *Metrics) ObserveFrame(_, took time.Duration) {
	m.FrameDuration.Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
