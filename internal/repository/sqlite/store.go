package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
	"gorm.io/gorm/clause"
)

// Store upserts one record by its natural key, replacing every non-key column.
func (r *Repository) Store(ctx context.Context, record model.IndexedRecord) error {
	switch rec := record.(type) {
	case model.Block:
		return r.storeBlock(ctx, rec)
	case model.Transaction:
		return r.storeTransaction(ctx, rec)
	case model.Account:
		return r.storeAccount(ctx, rec)
	case model.SlotStatus:
		return r.storeSlot(ctx, rec)
	default:
		return fmt.Errorf("store %T: %w", record, model.ErrUnsupportedRecord)
	}
}

func (r *Repository) storeBlock(ctx context.Context, b model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("store_block", err, start)
	}()

	row, err := newBlockRow(b)
	if err != nil {
		return fmt.Errorf("convert block %d: %w", b.Slot, err)
	}
	if err = r.upsert(ctx, &row); err != nil {
		return fmt.Errorf("store block %d: %w", b.Slot, err)
	}
	return nil
}

func (r *Repository) storeTransaction(ctx context.Context, tx model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("store_transaction", err, start)
	}()

	row, err := newTransactionRow(tx)
	if err != nil {
		return fmt.Errorf("convert transaction %s: %w", tx.Signature, err)
	}
	if err = r.upsert(ctx, &row); err != nil {
		return fmt.Errorf("store transaction %s: %w", tx.Signature, err)
	}
	return nil
}

func (r *Repository) storeAccount(ctx context.Context, a model.Account) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("store_account", err, start)
	}()

	row, err := newAccountRow(a)
	if err != nil {
		return fmt.Errorf("convert account %s: %w", a.Pubkey, err)
	}
	if err = r.upsert(ctx, &row); err != nil {
		return fmt.Errorf("store account %s: %w", a.Pubkey, err)
	}
	return nil
}

func (r *Repository) storeSlot(ctx context.Context, s model.SlotStatus) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("store_slot", err, start)
	}()

	row, err := newSlotRow(s)
	if err != nil {
		return fmt.Errorf("convert slot %d: %w", s.Slot, err)
	}
	if err = r.upsert(ctx, &row); err != nil {
		return fmt.Errorf("store slot %d: %w", s.Slot, err)
	}
	return nil
}

func (r *Repository) upsert(ctx context.Context, row any) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(row).Error
}
