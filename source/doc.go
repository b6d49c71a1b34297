// Package source provides built-in listing services for data connectors.
//
// Every source implements both types.ReferenceLister and types.PathResolver:
//
//   - Static: Fixed list of full paths, mutable between refreshes
//   - Filesystem: Files below a root directory of an afero filesystem
//   - S3: Object keys below a bucket prefix
//   - KeyValue: Keys of a NATS JetStream key-value bucket
//
// References are returned relative to the listed location, in lexicographic order.
// Custom sources can be implemented by satisfying types.ReferenceLister.
package source
