package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the subset of clickhouse.Conn the repository needs.
	Conn interface {
		Ping(ctx context.Context) error
		Exec(ctx context.Context, query string, args ...any) error
		QueryRow(ctx context.Context, query string, args ...any) driver.Row
		Close() error
	}

	// Row mirrors driver.Row.
	Row interface {
		Err() error
		Scan(dest ...any) error
		ScanStruct(dest any) error
	}
)
