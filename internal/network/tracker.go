package network

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"go.uber.org/zap"
)

// Tracker holds the identity -> ValidatorInfo map. Refresh replaces the whole
// map at once so readers never see a partially updated set.
type Tracker struct {
	client  VoteAccountsClient
	gauge   ActiveValidatorsGauge
	metrics Metrics
	clock   clock.Clock
	logger  *zap.Logger
	enabled bool

	validators  atomic.Pointer[map[string]model.ValidatorInfo]
	lastRefresh atomic.Int64
}

// NewTracker builds a Tracker. A disabled tracker only records refresh times.
func NewTracker(client VoteAccountsClient, gauge ActiveValidatorsGauge, metrics Metrics, clk clock.Clock, logger *zap.Logger, enabled bool) *Tracker {
	t := &Tracker{
		client:  client,
		gauge:   gauge,
		metrics: metrics,
		clock:   clk,
		logger:  logger.Named("validator_tracker"),
		enabled: enabled,
	}
	empty := map[string]model.ValidatorInfo{}
	t.validators.Store(&empty)
	return t
}

// Refresh reloads the vote accounts and publishes the active count.
func (t *Tracker) Refresh(ctx context.Context) error {
	if !t.enabled {
		t.lastRefresh.Store(t.clock.Now().UnixNano())
		return nil
	}

	start := time.Now()
	var err error
	defer func() {
		t.metrics.ObserveCheck("validators", err, start)
	}()

	list, err := t.client.GetVoteAccounts(ctx)
	if err != nil {
		return fmt.Errorf("get vote accounts: %w", err)
	}

	next := make(map[string]model.ValidatorInfo, len(list))
	var active uint64
	for _, v := range list {
		next[v.Identity] = v
		if !v.Delinquent {
			active++
		}
	}
	t.validators.Store(&next)
	t.gauge.SetActiveValidators(active)
	t.lastRefresh.Store(t.clock.Now().UnixNano())

	t.logger.Debug("validators refreshed",
		zap.Int("validators", len(next)),
		zap.Uint64("active", active),
	)
	return nil
}

// Get returns the validator with the given identity.
func (t *Tracker) Get(identity string) (model.ValidatorInfo, bool) {
	v, ok := (*t.validators.Load())[identity]
	return v, ok
}

// Count returns the number of tracked validators.
func (t *Tracker) Count() int {
	return len(*t.validators.Load())
}

// LastRefresh returns when Refresh last completed, zero if never.
func (t *Tracker) LastRefresh() time.Time {
	ns := t.lastRefresh.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
