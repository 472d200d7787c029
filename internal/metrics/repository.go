package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of store operations.",
	}, []string{"operation", "backend", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "backend", "status"})
)

// Repository tracks metrics for durable store operations of one backend.
type Repository struct {
	backend string
}

// NewRepository creates a Repository collector labelled with the backend name.
func NewRepository(backend string) *Repository {
	return &Repository{backend: labelOrUnknown(backend)}
}

// Observe records duration and status of a store operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
