package solana

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RPC is the subset of *rpc.Client used by the indexer.
	RPC interface {
		GetSlot(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
		GetEpochInfo(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetEpochInfoResult, error)
		GetTransactionCount(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
		GetVersion(ctx context.Context) (*rpc.GetVersionResult, error)
		GetBlockTime(ctx context.Context, block uint64) (*sol.UnixTimeSeconds, error)
		GetVoteAccounts(ctx context.Context, opts *rpc.GetVoteAccountsOpts) (*rpc.GetVoteAccountsResult, error)
		GetRecentPerformanceSamples(ctx context.Context, limit *uint) ([]*rpc.GetRecentPerformanceSamplesResult, error)
		GetBlockWithOpts(ctx context.Context, slot uint64, opts *rpc.GetBlockOpts) (*rpc.GetBlockResult, error)
	}
)

// EpochInfo is the epoch position reported by the node.
type EpochInfo struct {
	AbsoluteSlot uint64
	BlockHeight  uint64
	Epoch        uint64
	SlotIndex    uint64
	SlotsInEpoch uint64
}

// PerformanceSample is one entry of getRecentPerformanceSamples.
type PerformanceSample struct {
	Slot             uint64
	NumSlots         uint64
	NumTransactions  uint64
	SamplePeriodSecs uint16
}
