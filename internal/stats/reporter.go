package stats

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"go.uber.org/zap"
)

// Reporter logs an Aggregator snapshot on a fixed interval.
type Reporter struct {
	aggregator *Aggregator
	interval   time.Duration
	sleep      clock.SleepFunc
	logger     *zap.Logger
}

// NewReporter builds a Reporter.
func NewReporter(aggregator *Aggregator, interval time.Duration, logger *zap.Logger) *Reporter {
	return &Reporter{
		aggregator: aggregator,
		interval:   interval,
		sleep:      clock.SleepWithContext,
		logger:     logger.Named("stats"),
	}
}

// Run reports immediately and then every interval until ctx is done. It only
// returns the context's error.
func (r *Reporter) Run(ctx context.Context) error {
	for {
		r.Report()
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

// Report logs one snapshot.
func (r *Reporter) Report() {
	s := r.aggregator.Snapshot()
	r.logger.Info("indexer stats",
		zap.Duration("uptime", s.Uptime.Truncate(time.Second)),
		zap.Uint64("blocks", s.BlocksProcessed),
		zap.Uint64("transactions", s.TransactionsProcessed),
		zap.Uint64("accounts", s.AccountsUpdated),
		zap.Duration("latency", s.LastLatency),
		zap.Duration("latency_p50", s.LatencyP50),
		zap.Duration("latency_p99", s.LatencyP99),
	)
}
