// Package indexer runs the ingestion, network monitor and stats loops as one
// pipeline that stops as a whole on the first failure.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultHealthInterval = 30 * time.Second

var (
	ErrAlreadyStarted = errors.New("indexer already started")
	ErrStopped        = errors.New("indexer stopped")

	errEngineExited = errors.New("engine: exited before the pipeline was stopped")
)

// Components are the collaborators of an Orchestrator. Monitor and Tracker
// may be nil, in which case the monitor loop skips them.
type Components struct {
	Engine     Engine
	Store      Store
	Normalizer Normalizer
	Monitor    HealthMonitor
	Tracker    ValidatorTracker
	Stats      Stats
	Reporter   StatsReporter
	Metrics    Metrics
}

// Orchestrator owns the pipeline lifecycle.
type Orchestrator struct {
	c              Components
	healthInterval time.Duration
	clock          clock.Clock
	sleep          clock.SleepFunc
	logger         *zap.Logger

	mu        sync.Mutex
	state     State
	cancel    context.CancelFunc
	startedAt time.Time
}

// New builds an Orchestrator in the Idle state.
func New(c Components, healthInterval time.Duration, clk clock.Clock, logger *zap.Logger) *Orchestrator {
	if healthInterval <= 0 {
		healthInterval = defaultHealthInterval
	}
	return &Orchestrator{
		c:              c,
		healthInterval: healthInterval,
		clock:          clk,
		sleep:          clock.SleepWithContext,
		logger:         logger.Named("indexer"),
	}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Uptime is the time since Start, or zero if the pipeline never started.
func (o *Orchestrator) Uptime() time.Duration {
	o.mu.Lock()
	startedAt := o.startedAt
	o.mu.Unlock()
	if startedAt.IsZero() {
		return 0
	}
	return o.clock.Since(startedAt)
}

// Start runs the pipeline and blocks until it ends. The first loop error
// cancels the other loops and is returned. Cancellation of ctx or a call to
// Stop ends the pipeline with a nil error.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	switch o.state {
	case StateRunning:
		o.mu.Unlock()
		return ErrAlreadyStarted
	case StateStopped:
		o.mu.Unlock()
		return ErrStopped
	}
	ctx, cancel := context.WithCancel(ctx)
	o.state = StateRunning
	o.cancel = cancel
	o.startedAt = o.clock.Now()
	o.mu.Unlock()

	defer o.finish()

	o.logger.Info("indexer started", zap.Duration("health_interval", o.healthInterval))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := o.c.Engine.Start(gctx); err != nil {
			return fmt.Errorf("engine: %w", err)
		}
		if gctx.Err() == nil {
			return errEngineExited
		}
		return nil
	})
	g.Go(func() error {
		return o.ingest(gctx)
	})
	g.Go(func() error {
		o.monitor(gctx)
		return nil
	})
	g.Go(func() error {
		if err := o.c.Reporter.Run(gctx); err != nil && gctx.Err() == nil {
			return fmt.Errorf("stats reporter: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if err != nil {
		o.logger.Error("indexer failed", zap.Error(err))
		return err
	}
	o.logger.Info("indexer stopped", zap.Duration("uptime", o.Uptime()))
	return nil
}

// Stop cancels a running pipeline and signals the engine. Safe to call more
// than once and before Start.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	prev := o.state
	o.state = StateStopped
	cancel := o.cancel
	o.mu.Unlock()

	if prev == StateStopped {
		return
	}
	o.c.Engine.Stop()
	if cancel != nil {
		cancel()
	}
}

func (o *Orchestrator) finish() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
	o.state = StateStopped
}

func (o *Orchestrator) ingest(ctx context.Context) error {
	events := o.c.Engine.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := o.process(ctx, ev); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func (o *Orchestrator) process(ctx context.Context, ev model.RawEvent) error {
	start := o.clock.Now()
	var err error
	records := o.c.Normalizer.Normalize(ev)
	defer func() {
		o.c.Metrics.ObserveEvent(err, len(records), start)
	}()

	for _, record := range records {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = o.c.Store.Store(ctx, record); err != nil {
			err = fmt.Errorf("store %s at slot %d: %w", record.Kind(), ev.Slot, err)
			return err
		}
		o.c.Stats.Record(record)
		o.c.Metrics.ObserveRecord(string(record.Kind()))
	}

	o.c.Stats.ObserveLatency(o.clock.Since(start))
	return nil
}

func (o *Orchestrator) monitor(ctx context.Context) {
	for {
		if o.c.Monitor != nil {
			if err := o.c.Monitor.CheckHealth(ctx); err != nil && ctx.Err() == nil {
				o.logger.Warn("network health check failed", zap.Error(err))
			}
		}
		if o.c.Tracker != nil {
			if err := o.c.Tracker.Refresh(ctx); err != nil && ctx.Err() == nil {
				o.logger.Warn("validator refresh failed", zap.Error(err))
			}
		}
		if err := o.sleep(ctx, o.healthInterval); err != nil {
			return
		}
	}
}
