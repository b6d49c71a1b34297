// Package types provides core type definitions and interfaces for the dataconn library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root dataconn package, the sorter and partitioner packages and the
// internal implementations.
//
// Key types:
//   - PartitionDefinition: Structured key-value identity of a data reference
//   - BatchDefinition / BatchRequest: Batch identity and its request-shaped filter
//   - Asset / RegexConfig: Per-asset pattern overrides
//   - Sorter: Single-key partition ordering strategy
//   - ReferenceLister / PathResolver: External listing collaborators
//   - DataConnector: Cache-backed reference mapping contract
//   - Logger / MetricsCollector / Hooks: Ambient collaborators
package types
