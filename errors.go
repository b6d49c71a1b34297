package dataconn

import "github.com/arloliu/dataconn/types"

// Re-export sentinel errors from the types package.
//
// Callers match these with errors.Is; *ClassInstantiationError is matched with errors.As.
var (
	// ErrNotRefreshed is returned by cache queries issued before the first successful refresh.
	ErrNotRefreshed = types.ErrNotRefreshed

	// ErrConfiguration is returned for malformed or missing pattern, group-name or sorter configuration.
	ErrConfiguration = types.ErrConfiguration

	// ErrSorterNotFound is returned when a sorter name was never declared.
	ErrSorterNotFound = types.ErrSorterNotFound

	// ErrAssetNotFound is returned when an asset name is not owned by the connector.
	ErrAssetNotFound = types.ErrAssetNotFound

	// ErrNoDefaultPartitioner is returned when a dict connector has no usable default partitioner.
	ErrNoDefaultPartitioner = types.ErrNoDefaultPartitioner

	// ErrListerRequired is returned when a connector is built without a reference lister.
	ErrListerRequired = types.ErrListerRequired

	// ErrPathResolverRequired is returned when a full path is requested without a path resolver.
	ErrPathResolverRequired = types.ErrPathResolverRequired

	// ErrClassInstantiation matches every *ClassInstantiationError.
	ErrClassInstantiation = types.ErrClassInstantiation

	// ErrListingFailed wraps failures reported by a reference lister.
	ErrListingFailed = types.ErrListingFailed

	// ErrInvalidSortKey is returned when a sorter cannot interpret a partition key value.
	ErrInvalidSortKey = types.ErrInvalidSortKey

	// ErrLocationNotFound is returned by listing services when the storage behind a location does not exist.
	ErrLocationNotFound = types.ErrLocationNotFound

	// ErrBackendUnavailable is returned by listing services that lost connectivity to their backend.
	ErrBackendUnavailable = types.ErrBackendUnavailable
)
