package transport

import (
	"context"
	"fmt"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewHTTPHandler routes /health, /playground and /metrics. Unknown paths get
// a 404 in the JSON envelope. Cross-origin requests are allowed from origins.
func NewHTTPHandler(health *HealthHandler, origins []string, logger *zap.Logger) (http.Handler, error) {
	gw := gwruntime.NewServeMux(
		gwruntime.WithRoutingErrorHandler(routingError(logger)),
	)
	if err := gw.HandlePath(http.MethodGet, "/health", health.ServeHealth); err != nil {
		return nil, fmt.Errorf("register /health: %w", err)
	}
	if err := gw.HandlePath(http.MethodGet, "/playground", servePlayground(logger)); err != nil {
		return nil, fmt.Errorf("register /playground: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})
	return c.Handler(mux), nil
}

func routingError(logger *zap.Logger) gwruntime.RoutingErrorHandlerFunc {
	return func(_ context.Context, _ *gwruntime.ServeMux, _ gwruntime.Marshaler, w http.ResponseWriter, r *http.Request, status int) {
		msg := http.StatusText(status)
		if status == http.StatusNotFound {
			msg = "not found: " + r.URL.Path
		}
		writeJSON(w, status, failure[struct{}](msg), logger)
	}
}
