package metrics

import "github.com/arloliu/dataconn/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src, dataconn.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ConnectorMetrics implementation

// RecordRefresh discards the refresh metric.
func (n *NopMetrics) RecordRefresh(_ /* connector */ string, _ /* duration */ float64, _ /* success */ bool) {
	// No-op
}

// RecordReferenceCounts discards the reference count metrics.
func (n *NopMetrics) RecordReferenceCounts(_ /* connector */, _ /* asset */ string, _ /* matched */, _ /* unmatched */ int) {
	// No-op
}

// RecordAmbiguousReferences discards the ambiguous reference metric.
func (n *NopMetrics) RecordAmbiguousReferences(_ /* connector */ string, _ /* count */ int) {
	// No-op
}

// ListingMetrics implementation

// RecordListingDuration discards the listing latency metric.
func (n *NopMetrics) RecordListingDuration(_ /* asset */ string, _ /* duration */ float64, _ /* success */ bool) {
	// No-op
}
