package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ConnectorMetrics
	ListingMetrics
}

// ConnectorMetrics defines metrics for cache refresh operations.
type ConnectorMetrics interface {
	// RecordRefresh records a cache refresh attempt.
	//
	// Parameters:
	//   - connector: Connector name
	//   - duration: Time taken in seconds
	//   - success: true if the new cache replaced the old one
	RecordRefresh(connector string, duration float64, success bool)

	// RecordReferenceCounts sets matched and unmatched reference gauges for one asset.
	//
	// Parameters:
	//   - connector: Connector name
	//   - asset: Data asset name
	//   - matched: References mapped to at least one batch definition
	//   - unmatched: References that matched no pattern
	RecordReferenceCounts(connector, asset string, matched, unmatched int)

	// RecordAmbiguousReferences sets the number of references mapped to several batch definitions.
	RecordAmbiguousReferences(connector string, count int)
}

// ListingMetrics defines metrics for reference listing.
type ListingMetrics interface {
	// RecordListingDuration records the latency of one ListReferences call.
	//
	// Parameters:
	//   - asset: Data asset name being listed
	//   - duration: Time taken in seconds
	//   - success: true if the listing returned without error
	RecordListingDuration(asset string, duration float64, success bool)
}
