package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sni-backend/pkg/safe"
)

// LatestSlot returns the highest stored block slot; ok is false when no block exists.
func (r *Repository) LatestSlot(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_slot", err, start)
	}()

	var slot sql.NullInt64
	if err = r.db.WithContext(ctx).Raw("SELECT MAX(slot) FROM blocks").Row().Scan(&slot); err != nil {
		return 0, false, fmt.Errorf("query latest slot: %w", err)
	}
	if !slot.Valid {
		return 0, false, nil
	}

	latest, err := safe.Uint64(slot.Int64)
	if err != nil {
		return 0, false, fmt.Errorf("convert latest slot: %w", err)
	}
	return latest, true, nil
}

// BlockCount returns the exact number of stored blocks.
func (r *Repository) BlockCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_count", err, start)
	}()

	var n uint64
	if n, err = r.count(ctx, &blockRow{}); err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return n, nil
}

// TransactionCount returns the exact number of stored transactions.
func (r *Repository) TransactionCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_count", err, start)
	}()

	var n uint64
	if n, err = r.count(ctx, &transactionRow{}); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func (r *Repository) count(ctx context.Context, table any) (uint64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(table).Count(&n).Error; err != nil {
		return 0, err
	}
	return safe.Uint64(n)
}
