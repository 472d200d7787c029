package model

import "time"

// RawEvent is what an ingestion engine delivers for each observed slot.
type RawEvent struct {
	Slot      uint64 `json:"slot"`
	BlockHash string `json:"blockHash"`
	Timestamp int64  `json:"timestamp"`
}

// ValidatorInfo describes one vote account as last seen by the tracker.
type ValidatorInfo struct {
	VoteAccount    string
	Identity       string
	Commission     uint8
	LastVote       uint64
	ActivatedStake uint64
	Delinquent     bool
}

// NetworkSnapshot is a point-in-time read of the network gauges. Fields are
// read independently and may come from different checks.
type NetworkSnapshot struct {
	SlotHeight       uint64
	Epoch            uint64
	TransactionCount uint64
	AverageSlotTime  uint64
	ActiveValidators uint64
	LastCheck        time.Time
}

// HealthSummary is the payload served by the health endpoint.
type HealthSummary struct {
	Status              string `json:"status"`
	Version             string `json:"version"`
	UptimeSeconds       uint64 `json:"uptimeSeconds"`
	BlocksIndexed       uint64 `json:"blocksIndexed"`
	TransactionsIndexed uint64 `json:"transactionsIndexed"`
}
