package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const (
	latestSlotQuery       = `SELECT count() AS n, max(slot) AS latest FROM blocks FINAL`
	blockCountQuery       = `SELECT count() FROM blocks FINAL`
	transactionCountQuery = `SELECT count() FROM transactions FINAL`
)

// LatestSlot returns the highest stored block slot; ok is false when no block exists.
func (r *Repository) LatestSlot(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_slot", err, start)
	}()

	var n, latest uint64
	if err = r.conn.QueryRow(ctx, latestSlotQuery).Scan(&n, &latest); err != nil {
		return 0, false, fmt.Errorf("query latest slot: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return latest, true, nil
}

// BlockCount returns the number of distinct stored blocks.
func (r *Repository) BlockCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_count", err, start)
	}()

	var n uint64
	if err = r.conn.QueryRow(ctx, blockCountQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return n, nil
}

// TransactionCount returns the number of distinct stored transactions.
func (r *Repository) TransactionCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_count", err, start)
	}()

	var n uint64
	if err = r.conn.QueryRow(ctx, transactionCountQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
