package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const natsConnectionName = "sni-indexer"

// NATSSubscriberConfig selects the server and subject.
type NATSSubscriberConfig struct {
	URL        string
	Subject    string
	BufferSize int
}

// NATSSubscriber receives JSON encoded RawEvents published on a NATS subject.
// Messages that do not decode are logged and dropped.
type NATSSubscriber struct {
	cfg     NATSSubscriberConfig
	metrics Metrics
	logger  *zap.Logger

	events chan model.RawEvent

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
}

// NewNATSSubscriber builds a NATSSubscriber.
func NewNATSSubscriber(cfg NATSSubscriberConfig, metrics Metrics, logger *zap.Logger) *NATSSubscriber {
	if cfg.BufferSize < 1 {
		cfg.BufferSize = defaultEventsBufferSize
	}
	return &NATSSubscriber{
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("nats_subscriber"),
		events:  make(chan model.RawEvent, cfg.BufferSize),
	}
}

// Events returns the decoded events. It is closed when Start returns.
func (s *NATSSubscriber) Events() <-chan model.RawEvent {
	return s.events
}

// Stop ends a running Start. Safe to call more than once.
func (s *NATSSubscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Start connects, subscribes and delivers events until ctx is done or Stop
// is called. Connection and subscription failures are returned.
func (s *NATSSubscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.started = true
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	if s.stopped {
		cancel()
	}
	s.mu.Unlock()

	defer cancel()
	defer close(s.events)

	nc, err := nats.Connect(s.cfg.URL,
		nats.Name(natsConnectionName),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				s.logger.Warn("disconnected from nats", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			s.logger.Info("reconnected to nats", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()

	msgs := make(chan *nats.Msg, s.cfg.BufferSize)
	sub, err := nc.ChanSubscribe(s.cfg.Subject, msgs)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.cfg.Subject, err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Debug("unsubscribe failed", zap.Error(err))
		}
	}()

	s.logger.Info("nats subscriber started", zap.String("subject", s.cfg.Subject))
	s.consume(ctx, msgs)
	return nil
}

func (s *NATSSubscriber) consume(ctx context.Context, msgs <-chan *nats.Msg) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			ev, err := decodeEvent(msg.Data)
			if err != nil {
				s.metrics.EventDropped()
				s.logger.Warn("dropping malformed event", zap.String("subject", msg.Subject), zap.Error(err))
				continue
			}
			select {
			case <-ctx.Done():
				return
			case s.events <- ev:
				s.metrics.EventEmitted()
			}
		}
	}
}

func decodeEvent(data []byte) (model.RawEvent, error) {
	var ev model.RawEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return model.RawEvent{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
