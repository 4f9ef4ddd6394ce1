// Package metrics exposes onboarding activity as Prometheus collectors. The
// collectors live on a private registry so several wizard runs in one
// process (tests, mostly) never collide.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MaybeLow/OfficeAI/internal/onboarding"
)

const namespace = "officeai"

// Recorder implements onboarding.Observer on top of Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry
	now      func() time.Time

	transitions *prometheus.CounterVec
	completions *prometheus.CounterVec
	progress    prometheus.Gauge
	selections  *prometheus.GaugeVec
	stepSeconds *prometheus.HistogramVec

	enteredAt time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces time.Now for step durations.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// NewRecorder creates the collectors and registers them on a fresh registry.
// The clock starts when the recorder is created, which is when the welcome
// step is shown.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		now:      time.Now,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "transitions_total",
			Help:      "Step changes applied by the wizard.",
		}, []string{"from", "to"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "completions_total",
			Help:      "Finished wizard runs by final mode.",
		}, []string{"mode"}),
		progress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "progress_percent",
			Help:      "Completion percentage of the active step.",
		}),
		selections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "selections",
			Help:      "Number of categories chosen in a finished run.",
		}, []string{"kind"}),
		stepSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "step_seconds",
			Help:      "Time spent on a step before leaving it.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
		}, []string{"step"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.enteredAt = r.now()
	r.registry.MustRegister(r.transitions, r.completions, r.progress, r.selections, r.stepSeconds)
	return r
}

// Registry returns the registry holding the onboarding collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the current values to path in the node-exporter
// textfile collector format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// OnTransition implements onboarding.Observer.
func (r *Recorder) OnTransition(rec onboarding.TransitionRecord) {
	r.leave(rec.From)
	r.transitions.WithLabelValues(rec.From.String(), rec.To.String()).Inc()
	r.progress.Set(float64(rec.Progress))
}

// OnFinished implements onboarding.Observer.
func (r *Recorder) OnFinished(res onboarding.Result) {
	r.leave(res.Terminal)
	r.completions.WithLabelValues(Mode(res.Offline)).Inc()
	r.progress.Set(float64(onboarding.Progress(res.Terminal, res.Offline)))
	r.selections.WithLabelValues("recommendations").Set(float64(res.Summary.Recommendations.Len()))
	r.selections.WithLabelValues("data_tracking").Set(float64(res.Summary.DataTracking.Len()))
}

func (r *Recorder) leave(step onboarding.Step) {
	now := r.now()
	r.stepSeconds.WithLabelValues(step.String()).Observe(now.Sub(r.enteredAt).Seconds())
	r.enteredAt = now
}

// Mode names the final mode of a run as printed and exported.
func Mode(offline bool) string {
	if offline {
		return "offline"
	}
	return "online"
}
