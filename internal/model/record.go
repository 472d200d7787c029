package model

// RecordKind names the variant of an IndexedRecord.
type RecordKind string

const (
	KindBlock       RecordKind = "block"
	KindTransaction RecordKind = "transaction"
	KindAccount     RecordKind = "account"
	KindSlot        RecordKind = "slot"
)

// IndexedRecord is one canonical entity destined for the store. The set of
// variants is closed: Block, Transaction, Account and SlotStatus.
type IndexedRecord interface {
	Kind() RecordKind
	indexedRecord()
}

// Block is keyed by Slot.
type Block struct {
	Slot              uint64
	ParentSlot        uint64
	Height            uint64
	Timestamp         int64
	Blockhash         string
	TransactionsCount uint64
}

// Transaction is keyed by Signature. Slot is not checked against stored blocks.
type Transaction struct {
	Signature string
	Slot      uint64
	Timestamp int64
	Success   bool
	Data      []byte
}

// Account is keyed by Pubkey and reflects the most recently stored update.
type Account struct {
	Pubkey     string
	Owner      string
	Lamports   uint64
	Slot       uint64
	Executable bool
	RentEpoch  uint64
	DataHash   string
}

// SlotStatus is keyed by Slot; the latest status written wins.
type SlotStatus struct {
	Slot      uint64
	Parent    *uint64
	Status    SlotCommitment
	Timestamp int64
}

func (Block) Kind() RecordKind       { return KindBlock }
func (Transaction) Kind() RecordKind { return KindTransaction }
func (Account) Kind() RecordKind     { return KindAccount }
func (SlotStatus) Kind() RecordKind  { return KindSlot }

func (Block) indexedRecord()       {}
func (Transaction) indexedRecord() {}
func (Account) indexedRecord()     {}
func (SlotStatus) indexedRecord()  {}
