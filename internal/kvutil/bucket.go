// Package kvutil provides utilities for working with NATS JetStream KeyValue stores.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/dataconn/internal/natsutil"
)

// DefaultMaxRetries is used when EnsureBucket is given a non-positive retry count.
const DefaultMaxRetries = 3

// EnsureBucket opens a KV bucket, creating it when missing.
//
// Creation races with other processes are resolved by opening the winner's
// bucket. Only connectivity failures and creation races are retried, with
// exponential backoff starting at 10ms; any other error returns immediately.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - cfg: Bucket configuration used when the bucket must be created
//   - maxRetries: Maximum number of attempts (DefaultMaxRetries if <= 0)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Last error after all attempts
//
// Example:
//
//	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "catalog"}, 3)
func EnsureBucket(ctx context.Context, js jetstream.JetStream, cfg jetstream.KeyValueConfig, maxRetries int) (jetstream.KeyValue, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	var lastErr error
	for attempt := range maxRetries {
		kv, err := js.KeyValue(ctx, cfg.Bucket)
		if err == nil {
			return kv, nil
		}

		if natsutil.IsBucketMissing(err) {
			kv, err = js.CreateKeyValue(ctx, cfg)
			if err == nil {
				return kv, nil
			}
		}
		lastErr = err

		if !errors.Is(err, jetstream.ErrBucketExists) && !natsutil.IsConnectivityError(err) {
			break
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("opening KV bucket %s: %w", cfg.Bucket, ctx.Err())
		}

		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * 10 * time.Millisecond //nolint:gosec // attempt is bounded by maxRetries
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to open KV bucket %s: %w", cfg.Bucket, lastErr)
}

// KeysWithPrefix returns the sorted keys of kv that start with prefix.
//
// An empty bucket yields an empty slice.
//
// Parameters:
//   - ctx: Context for the listing
//   - kv: Bucket to list
//   - prefix: Key prefix ("" matches every key)
//
// Returns:
//   - []string: Matching keys in lexicographic order
//   - error: Listing error
func KeysWithPrefix(ctx context.Context, kv jetstream.KeyValue, prefix string) ([]string, error) {
	lister, err := kv.ListKeys(ctx)
	if err != nil {
		if natsutil.IsEmptyResult(err) {
			return []string{}, nil
		}

		return nil, err
	}
	defer func() { _ = lister.Stop() }()

	keys := []string{}
	for key := range lister.Keys() {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.Sort(keys)

	return keys, nil
}
