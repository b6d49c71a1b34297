package source

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/dataconn/types"
)

// fakeS3 serves ListObjectsV2 from an in-memory key list, pageSize keys per page.
type fakeS3 struct {
	s3iface.S3API

	bucket   string
	keys     []string
	pageSize int
	prefixes []string
}

func (f *fakeS3) ListObjectsV2PagesWithContext(
	_ aws.Context,
	input *s3.ListObjectsV2Input,
	fn func(*s3.ListObjectsV2Output, bool) bool,
	_ ...request.Option,
) error {
	if aws.StringValue(input.Bucket) != f.bucket {
		return awserr.New(s3.ErrCodeNoSuchBucket, "The specified bucket does not exist", nil)
	}

	prefix := aws.StringValue(input.Prefix)
	f.prefixes = append(f.prefixes, prefix)

	var matched []*s3.Object
	for _, k := range f.keys {
		if strings.HasPrefix(k, prefix) {
			matched = append(matched, &s3.Object{Key: aws.String(k)})
		}
	}

	for start := 0; ; start += f.pageSize {
		end := min(start+f.pageSize, len(matched))
		last := end == len(matched)
		if !fn(&s3.ListObjectsV2Output{Contents: matched[start:end]}, last) || last {
			return nil
		}
	}
}

func TestS3_ListReferences(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{
		bucket: "landing",
		keys: []string{
			"raw/A/",
			"raw/A/file_2.csv",
			"raw/A/file_1.csv",
			"raw/A/file_3.csv",
			"raw/AB/file_1.csv",
			"raw/B/other.csv",
		},
		pageSize: 2,
	}

	src := NewS3(client, "landing", "/raw/")

	refs, err := src.ListReferences(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"file_1.csv", "file_2.csv", "file_3.csv"}, refs)
	require.Equal(t, "raw/A/", client.prefixes[0])

	refs, err = src.ListReferences(ctx, "")
	require.NoError(t, err)
	require.Len(t, refs, 5)
}

func TestS3_MissingBucket(t *testing.T) {
	src := NewS3(&fakeS3{bucket: "landing", pageSize: 1}, "other", "")

	_, err := src.ListReferences(context.Background(), "A")
	require.ErrorIs(t, err, types.ErrLocationNotFound)
}

func TestNewS3FromURL(t *testing.T) {
	client := &fakeS3{bucket: "landing", pageSize: 10}

	src, err := NewS3FromURL(client, "s3://landing/raw/2024")
	require.NoError(t, err)
	require.Equal(t, "s3://landing/raw/2024/A/file_1.csv",
		src.ResolveFullPath("file_1.csv", types.Asset{Name: "A"}))

	src, err = NewS3FromURL(client, "s3://landing")
	require.NoError(t, err)
	require.Equal(t, "s3://landing/base/file_1.csv",
		src.ResolveFullPath("file_1.csv", types.Asset{Name: "A", BaseDirectory: "base"}))

	_, err = NewS3FromURL(client, "https://landing/raw")
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = NewS3FromURL(client, "s3://")
	require.ErrorIs(t, err, types.ErrConfiguration)
}
