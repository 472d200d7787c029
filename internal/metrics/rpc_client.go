package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of Solana RPC operations.",
	}, []string{"operation", "endpoint", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Solana RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "endpoint", "status"})
)

// RPCClient tracks metrics for RPC calls to a Solana node.
type RPCClient struct {
	endpoint string
}

// NewRPCClient constructs a metrics collector for RPC calls to endpoint.
func NewRPCClient(endpoint string) *RPCClient {
	return &RPCClient{endpoint: labelOrUnknown(endpoint)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, m.endpoint, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.endpoint, status).Observe(time.Since(started).Seconds())
}
