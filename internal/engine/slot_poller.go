// Package engine provides ingestion engines that deliver raw slot events.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/internal/solana"
	"github.com/goodnatureofminers/sni-backend/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned by Start on an engine that was started before.
var ErrAlreadyRunning = errors.New("engine already running")

const (
	defaultMaxSlotsPerPoll  = 256
	maxConsecutiveFailures  = 10
	defaultPollInterval     = 400 * time.Millisecond
	defaultEventsBufferSize = 1024
)

// SlotPollerConfig tunes the SlotPoller.
type SlotPollerConfig struct {
	PollInterval      time.Duration
	FetchWorkers      int
	BufferSize        int
	RequestsPerSecond int
	MaxSlotsPerPoll   int
}

type fetchResult struct {
	event   model.RawEvent
	skipped bool
}

// SlotPoller follows the chain tip over RPC. Each round it reads the current
// slot, fetches every new slot's block through a worker pool and emits the
// events in slot order. Skipped slots are dropped.
type SlotPoller struct {
	client    BlockClient
	metrics   Metrics
	limiter   ratelimit.Limiter
	logger    *zap.Logger
	sleep     clock.SleepFunc
	isSkipped func(error) bool
	cfg       SlotPollerConfig

	events chan model.RawEvent

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	next    uint64
}

// NewSlotPoller builds a SlotPoller.
func NewSlotPoller(client BlockClient, metrics Metrics, cfg SlotPollerConfig, logger *zap.Logger) *SlotPoller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.FetchWorkers < 1 {
		cfg.FetchWorkers = 1
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = defaultEventsBufferSize
	}
	if cfg.MaxSlotsPerPoll < 1 {
		cfg.MaxSlotsPerPoll = defaultMaxSlotsPerPoll
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &SlotPoller{
		client:    client,
		metrics:   metrics,
		limiter:   limiter,
		logger:    logger.Named("slot_poller"),
		sleep:     clock.SleepWithContext,
		isSkipped: solana.IsSkippedSlot,
		cfg:       cfg,
		events:    make(chan model.RawEvent, cfg.BufferSize),
	}
}

// Events returns the channel of fetched slots. It is closed when Start returns.
func (p *SlotPoller) Events() <-chan model.RawEvent {
	return p.events
}

// Stop ends a running Start. Safe to call more than once.
func (p *SlotPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.cancel != nil {
		p.cancel()
	}
}

// Start polls until ctx is done or Stop is called, returning nil in that case.
// It returns an error after too many consecutive failed rounds.
func (p *SlotPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	p.started = true
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	if p.stopped {
		cancel()
	}
	p.mu.Unlock()

	defer cancel()
	defer close(p.events)

	tip, err := p.client.GetSlot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("get starting slot: %w", err)
	}
	p.next = tip
	p.logger.Info("slot poller started", zap.Uint64("slot", tip))

	failures := 0
	for {
		err = p.poll(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			failures++
			p.logger.Warn("poll slots failed", zap.Int("consecutive_failures", failures), zap.Error(err))
			if failures >= maxConsecutiveFailures {
				return fmt.Errorf("poll slots: %d consecutive failures: %w", failures, err)
			}
		} else {
			failures = 0
		}

		if err = p.sleep(ctx, p.cfg.PollInterval); err != nil {
			return nil
		}
	}
}

func (p *SlotPoller) poll(ctx context.Context) error {
	start := time.Now()
	var err error
	var slots []uint64
	defer func() {
		p.metrics.ObservePoll(err, len(slots), start)
	}()

	p.limiter.Take()
	tip, err := p.client.GetSlot(ctx)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}
	if tip < p.next {
		return nil
	}

	last := tip
	if last-p.next >= uint64(p.cfg.MaxSlotsPerPoll) {
		last = p.next + uint64(p.cfg.MaxSlotsPerPoll) - 1
	}
	slots = make([]uint64, 0, last-p.next+1)
	for s := p.next; s <= last; s++ {
		slots = append(slots, s)
	}

	results, err := workerpool.Map(ctx, p.cfg.FetchWorkers, slots, p.fetch)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.skipped {
			p.metrics.EventDropped()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p.events <- r.event:
			p.metrics.EventEmitted()
		}
	}
	p.next = last + 1
	return nil
}

func (p *SlotPoller) fetch(ctx context.Context, slot uint64) (fetchResult, error) {
	p.limiter.Take()
	ev, err := p.client.GetBlock(ctx, slot)
	if err != nil {
		if p.isSkipped(err) {
			p.logger.Debug("slot skipped", zap.Uint64("slot", slot))
			return fetchResult{skipped: true}, nil
		}
		return fetchResult{}, fmt.Errorf("get block %d: %w", slot, err)
	}
	return fetchResult{event: ev}, nil
}
