package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enginePollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "poll_total",
		Help:      "Count of attempts to discover new slots.",
	}, []string{"source", "status"})

	enginePollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "poll_duration_seconds",
		Help:      "Duration of a discover-and-fetch round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	enginePollSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "poll_size",
		Help:      "Number of new slots found per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"source"})

	engineEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "events_total",
		Help:      "Count of events emitted or dropped by an engine.",
	}, []string{"source", "result"})
)

// Engine tracks metrics for an ingestion engine.
type Engine struct {
	source string
}

// NewEngine constructs an Engine collector for a source ("rpc", "nats").
func NewEngine(source string) *Engine {
	return &Engine{source: labelOrUnknown(source)}
}

// ObservePoll records a discover-and-fetch round.
func (m Engine) ObservePoll(err error, slots int, started time.Time) {
	status := statusOf(err)
	enginePollTotal.WithLabelValues(m.source, status).Inc()
	enginePollDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
	enginePollSize.WithLabelValues(m.source).Observe(float64(slots))
}

// EventEmitted counts an event handed to the pipeline.
func (m Engine) EventEmitted() {
	engineEventsTotal.WithLabelValues(m.source, "emitted").Inc()
}

// EventDropped counts an event skipped by the engine (skipped slot, malformed message).
func (m Engine) EventDropped() {
	engineEventsTotal.WithLabelValues(m.source, "dropped").Inc()
}
