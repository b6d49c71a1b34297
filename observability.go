package dataconn

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/dataconn/internal/logging"
	"github.com/arloliu/dataconn/internal/metrics"
)

// NewPrometheusMetrics returns a MetricsCollector backed by Prometheus.
//
// Collectors are registered with reg on first use.
//
// Parameters:
//   - reg: Registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("dataconn" if empty)
//
// Returns:
//   - MetricsCollector: Collector for WithMetrics
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewSlogLogger returns a Logger writing through a log/slog handler.
//
// Parameters:
//   - w: Destination writer
//   - level: "debug", "info", "warn" or "error" (default "info")
//   - format: "text" or "json" (default "text")
//
// Returns:
//   - Logger: Logger for WithLogger
func NewSlogLogger(w io.Writer, level, format string) Logger {
	return logging.NewSlogWithLevel(w, level, format)
}

// WrapSlog adapts an existing *slog.Logger.
func WrapSlog(l *slog.Logger) Logger {
	return logging.NewSlog(l)
}
