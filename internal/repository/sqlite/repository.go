// Package sqlite implements the durable store on an embedded SQLite file.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns = 4
	busyTimeoutMillis   = 5000
	memoryPath          = ":memory:"
)

// Repository persists indexed records into SQLite through gorm.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

// Options tune the connection pool.
type Options struct {
	MaxOpenConns int
}

// NewRepository opens the database at path, verifies it and creates the schema.
func NewRepository(ctx context.Context, path string, metrics Metrics, opts Options) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := gorm.Open(sqlite.Open(buildDSN(path)), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sqlite connection pool: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	// each in-memory connection would see its own database
	if path == memoryPath {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	repo := &Repository{db: db, metrics: metrics}
	if err = repo.InitializeSchema(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return repo, nil
}

func buildDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL", path, sep, busyTimeoutMillis)
}

// InitializeSchema creates the tables and indexes if they do not exist yet.
func (r *Repository) InitializeSchema(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("initialize_schema", err, start)
	}()

	if err = r.db.WithContext(ctx).AutoMigrate(&blockRow{}, &transactionRow{}, &accountRow{}, &slotRow{}); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sqlite connection pool: %w", err)
	}
	if err = sqlDB.Close(); err != nil {
		return fmt.Errorf("close sqlite database: %w", err)
	}
	return nil
}
