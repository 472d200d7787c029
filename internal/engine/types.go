package engine

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
)

type (
	// BlockClient is the RPC surface used by the SlotPoller.
	BlockClient interface {
		GetSlot(ctx context.Context) (uint64, error)
		GetBlock(ctx context.Context, slot uint64) (model.RawEvent, error)
	}

	Metrics interface {
		ObservePoll(err error, slots int, started time.Time)
		EventEmitted()
		EventDropped()
	}
)
