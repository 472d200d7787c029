package indexer

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
)

type (
	// Engine delivers raw slot events. Start blocks until the engine stops and
	// closes the Events channel on return.
	Engine interface {
		Start(ctx context.Context) error
		Stop()
		Events() <-chan model.RawEvent
	}

	Store interface {
		Store(ctx context.Context, record model.IndexedRecord) error
	}

	Normalizer interface {
		Normalize(ev model.RawEvent) []model.IndexedRecord
	}

	HealthMonitor interface {
		CheckHealth(ctx context.Context) error
	}

	ValidatorTracker interface {
		Refresh(ctx context.Context) error
	}

	// Stats receives per-record counts and per-event processing latency.
	Stats interface {
		Record(record model.IndexedRecord)
		ObserveLatency(d time.Duration)
	}

	StatsReporter interface {
		Run(ctx context.Context) error
	}

	Metrics interface {
		ObserveEvent(err error, records int, started time.Time)
		ObserveRecord(kind string)
	}
)
