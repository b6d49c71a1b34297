package types

import "context"

// DataConnector enumerates data references, maps them to batch definitions and caches the mapping.
//
// Cache queries made before the first successful refresh fail with ErrNotRefreshed, so
// callers can distinguish "not yet computed" from "computed, empty".
//
// Connectors are not safe for concurrent use. A refresh fully replaces the cache, so
// interleaving refreshes and reads from several goroutines must be prevented by the caller.
type DataConnector interface {
	// Name returns the connector name.
	Name() string

	// RefreshDataReferencesCache lists every asset and rebuilds the cache from scratch.
	//
	// The refresh is all-or-nothing: on error the previous cache, if any, stays intact.
	RefreshDataReferencesCache(ctx context.Context) error

	// GetAvailableDataAssetNames returns the names of the owned assets, independent of cache state.
	GetAvailableDataAssetNames() []string

	// GetDataReferenceListCount returns the number of cached references across all assets.
	GetDataReferenceListCount() (int, error)

	// GetUnmatchedDataReferences returns the cached references that matched no pattern.
	GetUnmatchedDataReferences() ([]string, error)

	// GetBatchDefinitionListFromCache flattens the cache, keeping the first batch definition of
	// every matched reference. Use GetAmbiguousDataReferences to detect discarded definitions.
	GetBatchDefinitionListFromCache() ([]BatchDefinition, error)
}
