// Package normalizer turns raw engine events into canonical records.
package normalizer

import "github.com/goodnatureofminers/sni-backend/internal/model"

// Options select which record kinds the normalizer emits.
type Options struct {
	IndexBlocks     bool
	TrackSlotStatus bool
	// Commitment is the status recorded for emitted slot records.
	Commitment model.SlotCommitment
}

// Normalizer maps a RawEvent onto zero or more IndexedRecords. It holds no
// mutable state and is safe for concurrent use.
type Normalizer struct {
	opts Options
}

// New builds a Normalizer.
func New(opts Options) *Normalizer {
	if opts.Commitment == "" {
		opts.Commitment = model.SlotConfirmed
	}
	return &Normalizer{opts: opts}
}

// Normalize emits one Block per event, including slot 0. Parent slot, height
// and transaction count are not carried by RawEvent and are stored as zero.
func (n *Normalizer) Normalize(ev model.RawEvent) []model.IndexedRecord {
	records := make([]model.IndexedRecord, 0, 2)
	if n.opts.IndexBlocks {
		records = append(records, model.Block{
			Slot:      ev.Slot,
			Timestamp: ev.Timestamp,
			Blockhash: ev.BlockHash,
		})
	}
	if n.opts.TrackSlotStatus {
		records = append(records, model.SlotStatus{
			Slot:      ev.Slot,
			Status:    n.opts.Commitment,
			Timestamp: ev.Timestamp,
		})
	}
	return records
}
