// Package network polls upstream network health and tracks the validator set.
package network

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/internal/solana"
	"go.uber.org/zap"
)

const performanceSampleLimit = 5

// Monitor keeps the latest network gauges. Each gauge is an independent
// atomic; a Snapshot may mix values from different checks.
type Monitor struct {
	client  HealthClient
	metrics Metrics
	clock   clock.Clock
	logger  *zap.Logger

	slotHeight       atomic.Uint64
	epoch            atomic.Uint64
	transactionCount atomic.Uint64
	averageSlotTime  atomic.Uint64
	activeValidators atomic.Uint64
	lastCheck        atomic.Int64
}

// NewMonitor builds a Monitor.
func NewMonitor(client HealthClient, metrics Metrics, clk clock.Clock, logger *zap.Logger) *Monitor {
	return &Monitor{
		client:  client,
		metrics: metrics,
		clock:   clk,
		logger:  logger.Named("network_monitor"),
	}
}

// CheckHealth queries slot, epoch and transaction count and publishes them.
// Gauges updated before a failing call keep their new values.
func (m *Monitor) CheckHealth(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		m.metrics.ObserveCheck("health", err, start)
	}()

	slot, err := m.client.GetSlot(ctx)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}
	m.slotHeight.Store(slot)
	m.metrics.SetSlotHeight(slot)

	info, err := m.client.GetEpochInfo(ctx)
	if err != nil {
		return fmt.Errorf("get epoch info: %w", err)
	}
	m.epoch.Store(info.Epoch)
	m.metrics.SetEpoch(info.Epoch)

	count, err := m.client.GetTransactionCount(ctx)
	if err != nil {
		return fmt.Errorf("get transaction count: %w", err)
	}
	m.transactionCount.Store(count)
	m.metrics.SetTransactionCount(count)

	m.updateAverageSlotTime(ctx)

	m.lastCheck.Store(m.clock.Now().UnixNano())
	m.logger.Debug("network health checked",
		zap.Uint64("slot", slot),
		zap.Uint64("epoch", info.Epoch),
		zap.Uint64("transaction_count", count),
	)
	return nil
}

func (m *Monitor) updateAverageSlotTime(ctx context.Context) {
	samples, err := m.client.GetRecentPerformanceSamples(ctx, performanceSampleLimit)
	if err != nil {
		m.logger.Debug("performance samples unavailable", zap.Error(err))
		return
	}
	if avg, ok := solana.AverageSlotTime(samples); ok {
		m.averageSlotTime.Store(avg)
		m.metrics.SetAverageSlotTime(avg)
	}
}

// SetActiveValidators publishes the active validator count.
func (m *Monitor) SetActiveValidators(v uint64) {
	m.activeValidators.Store(v)
	m.metrics.SetActiveValidators(v)
}

// Snapshot reads every gauge.
func (m *Monitor) Snapshot() model.NetworkSnapshot {
	snap := model.NetworkSnapshot{
		SlotHeight:       m.slotHeight.Load(),
		Epoch:            m.epoch.Load(),
		TransactionCount: m.transactionCount.Load(),
		AverageSlotTime:  m.averageSlotTime.Load(),
		ActiveValidators: m.activeValidators.Load(),
	}
	if ns := m.lastCheck.Load(); ns != 0 {
		snap.LastCheck = time.Unix(0, ns)
	}
	return snap
}
