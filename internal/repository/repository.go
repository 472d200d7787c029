// Package repository selects and opens a durable store backend from a DSN.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/sni-backend/internal/metrics"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/sni-backend/internal/repository/sqlite"
)

var (
	// ErrUnsupportedDSN is returned when no backend recognizes the DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported database url")
	// ErrUnsupportedRecord is returned by Store for unknown record variants.
	ErrUnsupportedRecord = model.ErrUnsupportedRecord
)

const (
	sqliteScheme     = "sqlite:"
	clickhouseScheme = "clickhouse://"
)

// Repository is the durable store contract shared by every backend.
type Repository interface {
	Store(ctx context.Context, record model.IndexedRecord) error
	LatestSlot(ctx context.Context) (uint64, bool, error)
	BlockCount(ctx context.Context) (uint64, error)
	TransactionCount(ctx context.Context) (uint64, error)
	InitializeSchema(ctx context.Context) error
	Close() error
}

// Config selects the backend and tunes its connection.
type Config struct {
	DatabaseURL       string
	EnableCompression bool
	MaxOpenConns      int
}

// Backend returns the backend name for a DSN, or an error when unsupported.
func Backend(dsn string) (string, error) {
	switch {
	case strings.HasPrefix(dsn, sqliteScheme):
		return "sqlite", nil
	case strings.HasPrefix(dsn, clickhouseScheme):
		return "clickhouse", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Open connects to the configured backend and initializes its schema.
func Open(ctx context.Context, cfg Config) (Repository, error) {
	backend, err := Backend(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	m := metrics.NewRepository(backend)
	switch backend {
	case "sqlite":
		path := strings.TrimPrefix(strings.TrimPrefix(cfg.DatabaseURL, sqliteScheme), "//")
		repo, err := sqlite.NewRepository(ctx, path, m, sqlite.Options{MaxOpenConns: cfg.MaxOpenConns})
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repo, nil
	default:
		repo, err := clickhouse.NewRepository(ctx, cfg.DatabaseURL, m, clickhouse.Options{
			EnableCompression: cfg.EnableCompression,
			MaxOpenConns:      cfg.MaxOpenConns,
		})
		if err != nil {
			return nil, fmt.Errorf("open clickhouse store: %w", err)
		}
		return repo, nil
	}
}
