package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "events_total",
		Help:      "Count of engine events handled by the ingestion loop.",
	}, []string{"source", "status"})

	pipelineEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "event_duration_seconds",
		Help:      "Duration of normalizing and storing one event.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	pipelineRecordsPerEvent = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "records_per_event",
		Help:      "Number of records produced per event.",
		Buckets:   prometheus.LinearBuckets(0, 1, 8),
	}, []string{"source"})

	pipelineRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "records_total",
		Help:      "Count of records stored, by kind.",
	}, []string{"source", "kind"})
)

// Pipeline tracks metrics for the ingestion loop.
type Pipeline struct {
	source string
}

// NewPipeline constructs a Pipeline collector for an engine source.
func NewPipeline(source string) *Pipeline {
	return &Pipeline{source: labelOrUnknown(source)}
}

// ObserveEvent records handling of one engine event.
func (m Pipeline) ObserveEvent(err error, records int, started time.Time) {
	status := statusOf(err)
	pipelineEventsTotal.WithLabelValues(m.source, status).Inc()
	pipelineEventDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
	pipelineRecordsPerEvent.WithLabelValues(m.source).Observe(float64(records))
}

// ObserveRecord counts one stored record of the given kind.
func (m Pipeline) ObserveRecord(kind string) {
	pipelineRecordsTotal.WithLabelValues(m.source, labelOrUnknown(kind)).Inc()
}
