// Package transport exposes the HTTP and gRPC boundaries of the indexer.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statusHealthy   = "healthy"
	summaryFlight   = "summary"
	contentTypeJSON = "application/json"

	summaryTimeout = 10 * time.Second
)

// Response is the envelope of every JSON reply.
type Response[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

// HealthHandler builds the health summary from the store counts.
type HealthHandler struct {
	counts  Counts
	uptime  UptimeSource
	version string
	logger  *zap.Logger
	group   singleflight.Group
}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler(counts Counts, uptime UptimeSource, version string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		counts:  counts,
		uptime:  uptime,
		version: version,
		logger:  logger.Named("health"),
	}
}

// Summary reads both counts. Concurrent callers share one in-flight read,
// which is detached from the cancellation of whichever caller started it.
func (h *HealthHandler) Summary(ctx context.Context) (model.HealthSummary, error) {
	v, err, _ := h.group.Do(summaryFlight, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryTimeout)
		defer cancel()

		blocks, err := h.counts.BlockCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count blocks: %w", err)
		}
		txs, err := h.counts.TransactionCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count transactions: %w", err)
		}
		return model.HealthSummary{
			Status:              statusHealthy,
			Version:             h.version,
			UptimeSeconds:       uint64(h.uptime.Uptime().Seconds()),
			BlocksIndexed:       blocks,
			TransactionsIndexed: txs,
		}, nil
	})
	if err != nil {
		return model.HealthSummary{}, err
	}
	return v.(model.HealthSummary), nil
}

// ServeHealth handles GET /health.
func (h *HealthHandler) ServeHealth(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	summary, err := h.Summary(r.Context())
	if err != nil {
		h.logger.Warn("health summary failed", zap.Error(err))
		writeJSON(w, http.StatusOK, failure[model.HealthSummary](err.Error()), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, Response[model.HealthSummary]{Success: true, Data: &summary}, h.logger)
}

func failure[T any](msg string) Response[T] {
	return Response[T]{Error: &msg}
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Debug("write response failed", zap.Error(err))
	}
}
