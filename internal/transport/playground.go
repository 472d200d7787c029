package transport

import (
	"net/http"

	"go.uber.org/zap"
)

const playgroundPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>SNI API</title>
</head>
<body>
  <h1>Solana Network Indexer</h1>
  <ul>
    <li><a href="/health">GET /health</a> indexer status and indexed counts</li>
    <li><a href="/metrics">GET /metrics</a> Prometheus metrics</li>
    <li>grpc.health.v1.Health/Check on the gRPC port</li>
  </ul>
</body>
</html>
`

func servePlayground(logger *zap.Logger) func(http.ResponseWriter, *http.Request, map[string]string) {
	return func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(playgroundPage)); err != nil {
			logger.Debug("write playground failed", zap.Error(err))
		}
	}
}
