package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/dataconn/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	refreshTotal    *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	matchedRefs     *prometheus.GaugeVec
	unmatchedRefs   *prometheus.GaugeVec
	ambiguousRefs   *prometheus.GaugeVec
	listingDuration *prometheus.HistogramVec
	listingFailures *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "dataconn" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "dataconn"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.refreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "connector",
			Name:      "refresh_total",
			Help:      "Total cache refresh attempts by connector and result.",
		}, []string{"connector", "success"})

		p.refreshDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "connector",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of cache refreshes in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10), // 1ms .. ~3.8s
		}, []string{"connector"})

		p.matchedRefs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "matched_references",
			Help:      "References mapped to at least one batch definition, per asset.",
		}, []string{"connector", "asset"})

		p.unmatchedRefs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "unmatched_references",
			Help:      "References that matched no asset pattern, per asset.",
		}, []string{"connector", "asset"})

		p.ambiguousRefs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "ambiguous_references",
			Help:      "References mapped to more than one batch definition.",
		}, []string{"connector"})

		p.listingDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "listing",
			Name:      "duration_seconds",
			Help:      "Latency of reference listing calls in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"asset"})

		p.listingFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "listing",
			Name:      "failures_total",
			Help:      "Total failed reference listing calls.",
		}, []string{"asset"})

		p.reg.MustRegister(p.refreshTotal)
		p.reg.MustRegister(p.refreshDuration)
		p.reg.MustRegister(p.matchedRefs)
		p.reg.MustRegister(p.unmatchedRefs)
		p.reg.MustRegister(p.ambiguousRefs)
		p.reg.MustRegister(p.listingDuration)
		p.reg.MustRegister(p.listingFailures)
	})
}

// ConnectorMetrics implementation

// RecordRefresh counts a refresh attempt and observes its duration.
func (p *PrometheusCollector) RecordRefresh(connector string, duration float64, success bool) {
	p.ensureRegistered()
	p.refreshTotal.WithLabelValues(connector, strconv.FormatBool(success)).Inc()
	p.refreshDuration.WithLabelValues(connector).Observe(duration)
}

// RecordReferenceCounts sets the matched and unmatched gauges for one asset.
func (p *PrometheusCollector) RecordReferenceCounts(connector, asset string, matched, unmatched int) {
	p.ensureRegistered()
	p.matchedRefs.WithLabelValues(connector, asset).Set(float64(matched))
	p.unmatchedRefs.WithLabelValues(connector, asset).Set(float64(unmatched))
}

// RecordAmbiguousReferences sets the ambiguous reference gauge.
func (p *PrometheusCollector) RecordAmbiguousReferences(connector string, count int) {
	p.ensureRegistered()
	p.ambiguousRefs.WithLabelValues(connector).Set(float64(count))
}

// ListingMetrics implementation

// RecordListingDuration observes listing latency and counts failures.
func (p *PrometheusCollector) RecordListingDuration(asset string, duration float64, success bool) {
	p.ensureRegistered()
	p.listingDuration.WithLabelValues(asset).Observe(duration)
	if !success {
		p.listingFailures.WithLabelValues(asset).Inc()
	}
}
