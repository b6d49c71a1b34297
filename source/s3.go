package source

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/arloliu/dataconn/types"
)

// S3 lists object keys below a bucket prefix.
type S3 struct {
	client s3iface.S3API
	bucket string
	prefix string
}

var (
	_ types.ReferenceLister = (*S3)(nil)
	_ types.PathResolver    = (*S3)(nil)
)

// NewS3 creates a listing service over an S3 bucket.
//
// Parameters:
//   - client: S3 API client (s3.New(session) in production)
//   - bucket: Bucket name
//   - prefix: Key prefix that asset locations are relative to ("" for the bucket root)
//
// Returns:
//   - *S3: Initialized source
//
// Example:
//
//	sess := session.Must(session.NewSession())
//	src := source.NewS3(s3.New(sess), "landing", "raw")
func NewS3(client s3iface.S3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// NewS3FromURL creates a listing service from an "s3://bucket/prefix" URL.
//
// Returns:
//   - *S3: Initialized source
//   - error: Wrapped types.ErrConfiguration for a malformed URL
func NewS3FromURL(client s3iface.S3API, rawURL string) (*S3, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing S3 URL %q: %w", types.ErrConfiguration, rawURL, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an s3://bucket/prefix URL", types.ErrConfiguration, rawURL)
	}

	return NewS3(client, u.Host, u.Path), nil
}

// ListReferences returns the object keys below prefix/location, relative to it.
//
// All result pages are read. Keys ending in "/" are treated as folder markers and skipped.
//
// Parameters:
//   - ctx: Context for the S3 requests
//   - location: Key prefix relative to the source prefix
//
// Returns:
//   - []string: Sorted references
//   - error: types.ErrLocationNotFound for a missing bucket, other S3 errors wrapped
func (s *S3) ListReferences(ctx context.Context, location string) ([]string, error) {
	prefix := locationPrefix(s.prefix, location)

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var keys []string
	err := s.client.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}

		return true
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchBucket {
			return nil, fmt.Errorf("%w: s3://%s: %w", types.ErrLocationNotFound, s.bucket, err)
		}

		return nil, fmt.Errorf("listing s3://%s/%s: %w", s.bucket, prefix, err)
	}

	return relativeTo(keys, prefix), nil
}

// ResolveFullPath returns the s3:// URL of a reference.
func (s *S3) ResolveFullPath(partialPath string, asset types.Asset) string {
	return "s3://" + s.bucket + "/" + strings.TrimPrefix(path.Join(s.prefix, asset.Location(), partialPath), "/")
}
