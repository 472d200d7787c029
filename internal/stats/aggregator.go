// Package stats aggregates pipeline counters and reports them periodically.
package stats

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/model"
)

const sketchRelativeAccuracy = 0.01

// Snapshot is a read of the aggregator. Counters are loaded one by one, so a
// snapshot taken during writes is not a consistent cut across them.
type Snapshot struct {
	BlocksProcessed       uint64
	TransactionsProcessed uint64
	AccountsUpdated       uint64
	LastLatency           time.Duration
	LatencyP50            time.Duration
	LatencyP99            time.Duration
	Uptime                time.Duration
}

// Aggregator counts processed records. Counters are lock-free; the latency
// sketch has its own mutex.
type Aggregator struct {
	clock     clock.Clock
	startedAt time.Time

	blocks       atomic.Uint64
	transactions atomic.Uint64
	accounts     atomic.Uint64
	lastLatency  atomic.Int64

	mu     sync.Mutex
	sketch *ddsketch.DDSketch
}

// NewAggregator starts the uptime clock now.
func NewAggregator(clk clock.Clock) *Aggregator {
	a := &Aggregator{clock: clk, startedAt: clk.Now()}
	if sketch, err := ddsketch.NewDefaultDDSketch(sketchRelativeAccuracy); err == nil {
		a.sketch = sketch
	}
	return a
}

// Record increments the counter matching the record's kind.
func (a *Aggregator) Record(record model.IndexedRecord) {
	switch record.Kind() {
	case model.KindBlock:
		a.blocks.Add(1)
	case model.KindTransaction:
		a.transactions.Add(1)
	case model.KindAccount:
		a.accounts.Add(1)
	}
}

// ObserveLatency overwrites the last latency and feeds the quantile sketch.
func (a *Aggregator) ObserveLatency(d time.Duration) {
	a.lastLatency.Store(int64(d))

	if a.sketch == nil || d < 0 {
		return
	}
	a.mu.Lock()
	_ = a.sketch.Add(float64(d))
	a.mu.Unlock()
}

// StartedAt returns when the aggregator was created.
func (a *Aggregator) StartedAt() time.Time {
	return a.startedAt
}

// Uptime returns the time since StartedAt.
func (a *Aggregator) Uptime() time.Duration {
	return a.clock.Since(a.startedAt)
}

// Snapshot reads every counter and the latency quantiles.
func (a *Aggregator) Snapshot() Snapshot {
	s := Snapshot{
		BlocksProcessed:       a.blocks.Load(),
		TransactionsProcessed: a.transactions.Load(),
		AccountsUpdated:       a.accounts.Load(),
		LastLatency:           time.Duration(a.lastLatency.Load()),
		Uptime:                a.Uptime(),
	}
	s.LatencyP50, s.LatencyP99 = a.quantiles()
	return s
}

func (a *Aggregator) quantiles() (p50, p99 time.Duration) {
	if a.sketch == nil {
		return 0, 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sketch.IsEmpty() {
		return 0, 0
	}
	v50, err := a.sketch.GetValueAtQuantile(0.50)
	if err != nil {
		return 0, 0
	}
	v99, err := a.sketch.GetValueAtQuantile(0.99)
	if err != nil {
		return time.Duration(v50), 0
	}
	return time.Duration(v50), time.Duration(v99)
}
