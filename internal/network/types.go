package network

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/internal/solana"
)

type (
	// HealthClient is the RPC surface polled by the Monitor.
	HealthClient interface {
		GetSlot(ctx context.Context) (uint64, error)
		GetEpochInfo(ctx context.Context) (solana.EpochInfo, error)
		GetTransactionCount(ctx context.Context) (uint64, error)
		GetRecentPerformanceSamples(ctx context.Context, limit uint) ([]solana.PerformanceSample, error)
	}

	// VoteAccountsClient is the RPC surface polled by the Tracker.
	VoteAccountsClient interface {
		GetVoteAccounts(ctx context.Context) ([]model.ValidatorInfo, error)
	}

	// Metrics mirrors the gauges into Prometheus.
	Metrics interface {
		SetSlotHeight(v uint64)
		SetEpoch(v uint64)
		SetTransactionCount(v uint64)
		SetAverageSlotTime(v uint64)
		SetActiveValidators(v uint64)
		ObserveCheck(check string, err error, started time.Time)
	}

	// ActiveValidatorsGauge receives the tracker's active validator count.
	ActiveValidatorsGauge interface {
		SetActiveValidators(v uint64)
	}
)
