package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	networkSlotHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "slot_height",
		Help:      "Latest slot reported by the upstream node.",
	})
	networkEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "epoch",
		Help:      "Current epoch reported by the upstream node.",
	})
	networkTransactionCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "transaction_count",
		Help:      "Cumulative transaction count reported by the upstream node.",
	})
	networkAverageSlotTime = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "average_slot_time_milliseconds",
		Help:      "Average slot time derived from recent performance samples.",
	})
	networkActiveValidators = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "active_validators",
		Help:      "Number of validators with a current vote account.",
	})

	networkChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "checks_total",
		Help:      "Count of network health checks and validator refreshes.",
	}, []string{"check", "status"})
	networkCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "network",
		Name:      "check_duration_seconds",
		Help:      "Duration of network health checks and validator refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"check", "status"})
)

// Network mirrors the network monitor gauges into Prometheus.
type Network struct{}

// NewNetwork creates a Network collector.
func NewNetwork() *Network {
	return &Network{}
}

// SetSlotHeight publishes the latest slot.
func (Network) SetSlotHeight(v uint64) { networkSlotHeight.Set(float64(v)) }

// SetEpoch publishes the current epoch.
func (Network) SetEpoch(v uint64) { networkEpoch.Set(float64(v)) }

// SetTransactionCount publishes the cumulative transaction count.
func (Network) SetTransactionCount(v uint64) { networkTransactionCount.Set(float64(v)) }

// SetAverageSlotTime publishes the average slot time in milliseconds.
func (Network) SetAverageSlotTime(v uint64) { networkAverageSlotTime.Set(float64(v)) }

// SetActiveValidators publishes the active validator count.
func (Network) SetActiveValidators(v uint64) { networkActiveValidators.Set(float64(v)) }

// ObserveCheck records the outcome of a named check ("health" or "validators").
func (Network) ObserveCheck(check string, err error, started time.Time) {
	status := statusOf(err)
	networkChecksTotal.WithLabelValues(check, status).Inc()
	networkCheckDuration.WithLabelValues(check, status).Observe(time.Since(started).Seconds())
}
