package clickhouse

import (
	"context"
	"fmt"
	"time"
)

var schemaStatements = []string{
	`
CREATE TABLE IF NOT EXISTS blocks (
	slot UInt64,
	parent_slot UInt64,
	height UInt64,
	timestamp Int64,
	blockhash String,
	transactions_count UInt64,
	version UInt64,
	INDEX idx_blocks_timestamp timestamp TYPE minmax GRANULARITY 4
) ENGINE = ReplacingMergeTree(version)
ORDER BY slot`,
	`
CREATE TABLE IF NOT EXISTS transactions (
	signature String,
	slot UInt64,
	timestamp Int64,
	success Bool,
	transaction_data String,
	version UInt64,
	INDEX idx_transactions_slot slot TYPE minmax GRANULARITY 4
) ENGINE = ReplacingMergeTree(version)
ORDER BY signature`,
	`
CREATE TABLE IF NOT EXISTS accounts (
	pubkey String,
	owner String,
	lamports UInt64,
	slot UInt64,
	executable Bool,
	rent_epoch UInt64,
	data_hash String,
	version UInt64,
	INDEX idx_accounts_owner owner TYPE bloom_filter GRANULARITY 4
) ENGINE = ReplacingMergeTree(version)
ORDER BY pubkey`,
	`
CREATE TABLE IF NOT EXISTS slots (
	slot UInt64,
	parent Nullable(UInt64),
	status LowCardinality(String),
	timestamp Int64,
	version UInt64
) ENGINE = ReplacingMergeTree(version)
ORDER BY slot`,
}

// InitializeSchema creates the tables if they do not exist yet.
func (r *Repository) InitializeSchema(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("initialize_schema", err, start)
	}()

	for _, stmt := range schemaStatements {
		if err = r.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
	}
	return nil
}
