package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dataconn/types"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_InterfaceCompliance(t *testing.T) {
	var _ types.MetricsCollector = NewNop()
	var _ types.ConnectorMetrics = NewNop()
	var _ types.ListingMetrics = NewNop()
}

func TestNopMetrics_Record(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordRefresh("conn", 0.25, true)
		metrics.RecordRefresh("", -1, false)
		metrics.RecordReferenceCounts("conn", "A", 2, 1)
		metrics.RecordReferenceCounts("", "", 0, 0)
		metrics.RecordAmbiguousReferences("conn", 3)
		metrics.RecordListingDuration("A", 0.01, true)
		metrics.RecordListingDuration("B", 0, false)
	})
}
