package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// Counts reads the aggregate counts served by the health endpoint.
	Counts interface {
		BlockCount(ctx context.Context) (uint64, error)
		TransactionCount(ctx context.Context) (uint64, error)
	}

	UptimeSource interface {
		Uptime() time.Duration
	}
)
