package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"explicador-backend/internal/types"
)

// Metrics tracks page requests and upstream explanation calls.
type Metrics struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explicador",
			Name:      "outcomes_total",
			Help:      "Request cycles by outcome kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "explicador",
			Name:      "upstream_request_duration_seconds",
			Help:      "Time spent waiting for the chat-completion API.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
	reg.MustRegister(m.outcomes, m.duration)
	return m
}

func (m *Metrics) ObserveOutcome(o *types.Outcome) {
	if o == nil {
		return
	}
	m.outcomes.WithLabelValues(string(o.Kind)).Inc()
}

func (m *Metrics) ObserveUpstream(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
