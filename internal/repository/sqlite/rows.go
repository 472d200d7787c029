package sqlite

import (
	"fmt"

	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/pkg/safe"
)

// SQLite integers are signed 64-bit; unsigned fields go through pkg/safe.

type blockRow struct {
	Slot              int64  `gorm:"column:slot;primaryKey;autoIncrement:false"`
	ParentSlot        int64  `gorm:"column:parent_slot;not null"`
	Height            int64  `gorm:"column:height;not null"`
	Timestamp         int64  `gorm:"column:timestamp;not null;index:idx_blocks_timestamp"`
	Blockhash         string `gorm:"column:blockhash;not null"`
	TransactionsCount int64  `gorm:"column:transactions_count;not null"`
	CreatedAt         int64  `gorm:"column:created_at;autoCreateTime"`
}

func (blockRow) TableName() string { return "blocks" }

type transactionRow struct {
	Signature string `gorm:"column:signature;primaryKey"`
	Slot      int64  `gorm:"column:slot;not null;index:idx_transactions_slot"`
	Timestamp int64  `gorm:"column:timestamp;not null"`
	Success   bool   `gorm:"column:success;not null"`
	Data      []byte `gorm:"column:transaction_data"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime"`
}

func (transactionRow) TableName() string { return "transactions" }

type accountRow struct {
	Pubkey     string `gorm:"column:pubkey;primaryKey"`
	Owner      string `gorm:"column:owner;not null;index:idx_accounts_owner"`
	Lamports   int64  `gorm:"column:lamports;not null"`
	Slot       int64  `gorm:"column:slot;not null"`
	Executable bool   `gorm:"column:executable;not null"`
	RentEpoch  int64  `gorm:"column:rent_epoch;not null"`
	DataHash   string `gorm:"column:data_hash;not null"`
	UpdatedAt  int64  `gorm:"column:updated_at;autoUpdateTime"`
}

func (accountRow) TableName() string { return "accounts" }

type slotRow struct {
	Slot      int64  `gorm:"column:slot;primaryKey;autoIncrement:false"`
	Parent    *int64 `gorm:"column:parent"`
	Status    string `gorm:"column:status;not null"`
	Timestamp int64  `gorm:"column:timestamp;not null"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime"`
}

func (slotRow) TableName() string { return "slots" }

func newBlockRow(b model.Block) (blockRow, error) {
	slot, err := safe.Int64(b.Slot)
	if err != nil {
		return blockRow{}, fmt.Errorf("slot: %w", err)
	}
	parent, err := safe.Int64(b.ParentSlot)
	if err != nil {
		return blockRow{}, fmt.Errorf("parent slot: %w", err)
	}
	height, err := safe.Int64(b.Height)
	if err != nil {
		return blockRow{}, fmt.Errorf("height: %w", err)
	}
	txCount, err := safe.Int64(b.TransactionsCount)
	if err != nil {
		return blockRow{}, fmt.Errorf("transactions count: %w", err)
	}
	return blockRow{
		Slot:              slot,
		ParentSlot:        parent,
		Height:            height,
		Timestamp:         b.Timestamp,
		Blockhash:         b.Blockhash,
		TransactionsCount: txCount,
	}, nil
}

func newTransactionRow(tx model.Transaction) (transactionRow, error) {
	slot, err := safe.Int64(tx.Slot)
	if err != nil {
		return transactionRow{}, fmt.Errorf("slot: %w", err)
	}
	return transactionRow{
		Signature: tx.Signature,
		Slot:      slot,
		Timestamp: tx.Timestamp,
		Success:   tx.Success,
		Data:      tx.Data,
	}, nil
}

func newAccountRow(a model.Account) (accountRow, error) {
	lamports, err := safe.Int64(a.Lamports)
	if err != nil {
		return accountRow{}, fmt.Errorf("lamports: %w", err)
	}
	slot, err := safe.Int64(a.Slot)
	if err != nil {
		return accountRow{}, fmt.Errorf("slot: %w", err)
	}
	rentEpoch, err := safe.Int64(a.RentEpoch)
	if err != nil {
		return accountRow{}, fmt.Errorf("rent epoch: %w", err)
	}
	return accountRow{
		Pubkey:     a.Pubkey,
		Owner:      a.Owner,
		Lamports:   lamports,
		Slot:       slot,
		Executable: a.Executable,
		RentEpoch:  rentEpoch,
		DataHash:   a.DataHash,
	}, nil
}

func newSlotRow(s model.SlotStatus) (slotRow, error) {
	slot, err := safe.Int64(s.Slot)
	if err != nil {
		return slotRow{}, fmt.Errorf("slot: %w", err)
	}
	parent, err := safe.OptionalInt64(s.Parent)
	if err != nil {
		return slotRow{}, fmt.Errorf("parent: %w", err)
	}
	return slotRow{
		Slot:      slot,
		Parent:    parent,
		Status:    string(s.Status),
		Timestamp: s.Timestamp,
	}, nil
}
