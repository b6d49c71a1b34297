package kvutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"

	dctest "github.com/arloliu/dataconn/testing"
)

func TestEnsureBucket(t *testing.T) {
	_, nc := dctest.StartEmbeddedNATS(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	t.Run("creates missing bucket", func(t *testing.T) {
		kv, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "catalog-create"}, 3)
		require.NoError(t, err)
		require.Equal(t, "catalog-create", kv.Bucket())
	})

	t.Run("opens existing bucket", func(t *testing.T) {
		existing, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: "catalog-open"})
		require.NoError(t, err)
		_, err = existing.Put(ctx, "A/file_1.csv", []byte("1"))
		require.NoError(t, err)

		kv, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "catalog-open"}, 0)
		require.NoError(t, err)

		entry, err := kv.Get(ctx, "A/file_1.csv")
		require.NoError(t, err)
		require.Equal(t, []byte("1"), entry.Value())
	})

	t.Run("concurrent callers share one bucket", func(t *testing.T) {
		const workers = 5

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "catalog-race"}, 5)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
	})

	t.Run("invalid bucket name is not retried", func(t *testing.T) {
		_, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "bad bucket"}, 3)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, ccancel := context.WithCancel(ctx)
		ccancel()

		_, err := EnsureBucket(cctx, js, jetstream.KeyValueConfig{Bucket: "catalog-cancel"}, 3)
		require.Error(t, err)
	})
}

func TestKeysWithPrefix(t *testing.T) {
	_, nc := dctest.StartEmbeddedNATS(t)
	kv := dctest.CreateJetStreamKV(t, nc, "catalog-keys")

	ctx := context.Background()

	keys, err := KeysWithPrefix(ctx, kv, "")
	require.NoError(t, err)
	require.Empty(t, keys)

	dctest.SeedKV(t, kv, "B/other.csv", "A/file_2.csv", "A/file_1.csv")

	keys, err = KeysWithPrefix(ctx, kv, "A/")
	require.NoError(t, err)
	require.Equal(t, []string{"A/file_1.csv", "A/file_2.csv"}, keys)

	keys, err = KeysWithPrefix(ctx, kv, "")
	require.NoError(t, err)
	require.Equal(t, []string{"A/file_1.csv", "A/file_2.csv", "B/other.csv"}, keys)
}
