package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dataconn library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Cache errors.
var (
	// ErrNotRefreshed is returned by cache queries issued before the first successful refresh.
	ErrNotRefreshed = errors.New("data references cache has not been refreshed")
)

// Configuration errors - Fatal, never retried internally.
var (
	// ErrConfiguration is returned for malformed or missing pattern, group-name or sorter configuration.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrSorterNotFound is returned when a sorter name was never declared on a partitioner.
	ErrSorterNotFound = errors.New("sorter not declared")

	// ErrAssetNotFound is returned when an asset name is not owned by the connector.
	ErrAssetNotFound = errors.New("data asset not found")

	// ErrNoDefaultPartitioner is returned when a connector has no usable default partitioner.
	ErrNoDefaultPartitioner = errors.New("default partitioner not configured")

	// ErrListerRequired is returned when a component needs a reference lister and has none.
	ErrListerRequired = errors.New("reference lister is required")

	// ErrPathResolverRequired is returned when a full path is requested without a path resolver.
	ErrPathResolverRequired = errors.New("path resolver is required")
)

// Construction errors.
var (
	// ErrClassInstantiation matches every *ClassInstantiationError via errors.Is.
	ErrClassInstantiation = errors.New("class instantiation failed")
)

// Runtime errors.
var (
	// ErrListingFailed wraps failures reported by a reference lister.
	ErrListingFailed = errors.New("data reference listing failed")

	// ErrInvalidSortKey is returned when a sorter cannot interpret a partition key value.
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Listing backend errors - wrapped by listing services, surfaced inside ErrListingFailed.
var (
	// ErrLocationNotFound is returned when the storage behind a location does not exist.
	ErrLocationNotFound = errors.New("listing location not found")

	// ErrBackendUnavailable wraps listing failures caused by lost connectivity to the storage backend.
	ErrBackendUnavailable = errors.New("listing backend unavailable")
)

// ClassInstantiationError reports that a configured component kind could not be constructed.
//
// Use errors.As to recover the offending kind and module; errors.Is(err, ErrClassInstantiation)
// matches any instance.
type ClassInstantiationError struct {
	// ModuleName is the registry namespace that was searched.
	ModuleName string

	// ClassName is the kind that was requested.
	ClassName string

	// Err is the underlying cause, nil when the kind is simply not registered.
	Err error
}

// Error implements the error interface.
func (e *ClassInstantiationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to instantiate class %q from module %q: kind not registered",
			e.ClassName, e.ModuleName)
	}

	return fmt.Sprintf("unable to instantiate class %q from module %q: %v", e.ClassName, e.ModuleName, e.Err)
}

// Unwrap exposes both ErrClassInstantiation and the underlying cause.
func (e *ClassInstantiationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrClassInstantiation}
	}

	return []error{ErrClassInstantiation, e.Err}
}
