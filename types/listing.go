package types

import "context"

// ReferenceLister discovers the raw data references available under a location.
//
// Implementations can query various backends:
//   - Filesystem: files below a base directory
//   - S3: object keys below a prefix
//   - NATS KV: keys of a JetStream key-value bucket
//   - Static: fixed list for testing
//
// Connectors call ListReferences once per asset during every cache refresh.
type ReferenceLister interface {
	// ListReferences returns all references under location.
	//
	// Implementations should:
	//   - Return references relative to location
	//   - Return consistent results for the same backend state
	//   - Return an error for any listing failure (connectors never retry)
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - location: Base location of the asset ("" lists everything)
	//
	// Returns:
	//   - []string: Discovered references
	//   - error: Listing error (nil on success)
	ListReferences(ctx context.Context, location string) ([]string, error)
}

// PathResolver turns a cached, location-relative reference into a fully-qualified location.
type PathResolver interface {
	// ResolveFullPath returns the full location of partialPath within asset.
	ResolveFullPath(partialPath string, asset Asset) string
}
