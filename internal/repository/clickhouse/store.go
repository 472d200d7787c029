package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
)

const (
	insertBlockQuery = `
INSERT INTO blocks (slot, parent_slot, height, timestamp, blockhash, transactions_count, version)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertTransactionQuery = `
INSERT INTO transactions (signature, slot, timestamp, success, transaction_data, version)
VALUES (?, ?, ?, ?, ?, ?)`
	insertAccountQuery = `
INSERT INTO accounts (pubkey, owner, lamports, slot, executable, rent_epoch, data_hash, version)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertSlotQuery = `
INSERT INTO slots (slot, parent, status, timestamp, version)
VALUES (?, ?, ?, ?, ?)`
)

// Store inserts a new row version; reads collapse versions so the highest
// version wins. The version is taken when the insert starts, so of two
// concurrent inserts for the same key the one that started last wins, not the
// one that completed last.
func (r *Repository) Store(ctx context.Context, record model.IndexedRecord) error {
	switch rec := record.(type) {
	case model.Block:
		return r.insert(ctx, "store_block", fmt.Sprintf("store block %d", rec.Slot), insertBlockQuery,
			rec.Slot, rec.ParentSlot, rec.Height, rec.Timestamp, rec.Blockhash, rec.TransactionsCount)
	case model.Transaction:
		return r.insert(ctx, "store_transaction", fmt.Sprintf("store transaction %s", rec.Signature), insertTransactionQuery,
			rec.Signature, rec.Slot, rec.Timestamp, rec.Success, string(rec.Data))
	case model.Account:
		return r.insert(ctx, "store_account", fmt.Sprintf("store account %s", rec.Pubkey), insertAccountQuery,
			rec.Pubkey, rec.Owner, rec.Lamports, rec.Slot, rec.Executable, rec.RentEpoch, rec.DataHash)
	case model.SlotStatus:
		return r.insert(ctx, "store_slot", fmt.Sprintf("store slot %d", rec.Slot), insertSlotQuery,
			rec.Slot, rec.Parent, string(rec.Status), rec.Timestamp)
	default:
		return fmt.Errorf("store %T: %w", record, model.ErrUnsupportedRecord)
	}
}

func (r *Repository) insert(ctx context.Context, operation, what, query string, args ...any) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	args = append(args, r.nextVersion())
	if err = r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
