// Package clickhouse implements the durable store on ClickHouse ReplacingMergeTree tables.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Repository persists indexed records into ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
	now     func() time.Time
	version atomic.Uint64
}

// Options tune the connection.
type Options struct {
	EnableCompression bool
	MaxOpenConns      int
}

// NewRepository connects to dsn, verifies the connection and creates the schema.
func NewRepository(ctx context.Context, dsn string, metrics Metrics, opts Options) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	if opts.EnableCompression {
		options.Compression = &clickhouse.Compression{Method: clickhouse.CompressionLZ4}
	}
	if opts.MaxOpenConns > 0 {
		options.MaxOpenConns = opts.MaxOpenConns
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	if err = conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	repo := newRepository(conn, metrics, time.Now)
	if err = repo.InitializeSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return repo, nil
}

func newRepository(conn Conn, metrics Metrics, now func() time.Time) *Repository {
	return &Repository{conn: conn, metrics: metrics, now: now}
}

// nextVersion returns a strictly increasing row version seeded from wall-clock nanoseconds.
func (r *Repository) nextVersion() uint64 {
	for {
		prev := r.version.Load()
		next := uint64(r.now().UnixNano())
		if next <= prev {
			next = prev + 1
		}
		if r.version.CompareAndSwap(prev, next) {
			return next
		}
	}
}

// Close releases the connection.
func (r *Repository) Close() error {
	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("close clickhouse connection: %w", err)
	}
	return nil
}
