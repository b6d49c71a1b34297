package source

import (
	"context"
	"fmt"
	"path"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/dataconn/internal/kvutil"
	"github.com/arloliu/dataconn/internal/natsutil"
	"github.com/arloliu/dataconn/types"
)

// KeyValue lists the keys of a NATS JetStream key-value bucket.
//
// Keys are treated as slash-separated paths, for example "orders/2024/01.csv".
type KeyValue struct {
	kv jetstream.KeyValue
}

var (
	_ types.ReferenceLister = (*KeyValue)(nil)
	_ types.PathResolver    = (*KeyValue)(nil)
)

// NewKeyValue creates a listing service over an open bucket.
func NewKeyValue(kv jetstream.KeyValue) *KeyValue {
	return &KeyValue{kv: kv}
}

// OpenKeyValue opens or creates bucket and returns a listing service over it.
//
// Parameters:
//   - ctx: Context for the bucket lookup
//   - js: JetStream context
//   - bucket: Bucket name
//
// Returns:
//   - *KeyValue: Initialized source
//   - error: Bucket open failure, types.ErrBackendUnavailable when the server is unreachable
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	src, err := source.OpenKeyValue(ctx, js, "catalog")
func OpenKeyValue(ctx context.Context, js jetstream.JetStream, bucket string) (*KeyValue, error) {
	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "data reference catalog",
	}, kvutil.DefaultMaxRetries)
	if err != nil {
		return nil, classify(err)
	}

	return NewKeyValue(kv), nil
}

// Bucket returns the bucket name.
func (k *KeyValue) Bucket() string {
	return k.kv.Bucket()
}

// ListReferences returns the keys below location, relative to it.
//
// Returns:
//   - []string: Sorted references
//   - error: Listing failure, wrapped with types.ErrBackendUnavailable on connectivity loss
func (k *KeyValue) ListReferences(ctx context.Context, location string) ([]string, error) {
	prefix := locationPrefix("", location)

	keys, err := kvutil.KeysWithPrefix(ctx, k.kv, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing bucket %s: %w", k.kv.Bucket(), classify(err))
	}

	return relativeTo(keys, prefix), nil
}

// ResolveFullPath returns the full key of a reference.
func (k *KeyValue) ResolveFullPath(partialPath string, asset types.Asset) string {
	return path.Join(asset.Location(), partialPath)
}

func classify(err error) error {
	if natsutil.IsConnectivityError(err) {
		return fmt.Errorf("%w: %w", types.ErrBackendUnavailable, err)
	}

	return err
}
