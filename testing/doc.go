// Package testing provides test utilities for the dataconn library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV / SeedKV: KV buckets holding data references
//   - WriteFiles: Filesystem fixtures on any afero.Fs
//   - NewTestLogger: Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    dctest "github.com/arloliu/dataconn/testing"
//	)
//
//	func TestKeyValueSource(t *testing.T) {
//	    _, nc := dctest.StartEmbeddedNATS(t)
//	    kv := dctest.CreateJetStreamKV(t, nc, "catalog")
//	    dctest.SeedKV(t, kv, "A/file_1.csv")
//	}
package testing
