// Package s3store adapts the S3 client to the object-store needs of the
// pipeline: metadata reads and presigned access links.
package s3store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// Store wraps the S3 client handles, created once per process and reused
// across invocations.
type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	ttl       time.Duration
}

// New creates an object store adapter. presignTTL bounds the lifetime of
// generated access links.
func New(client *s3.Client, presignTTL time.Duration) *Store {
	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		ttl:       presignTTL,
	}
}

// ObjectMetadata returns the user metadata of one stored object. Keys arrive
// lowercased from the service.
func (s *Store) ObjectMetadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object %s/%s: %w", bucket, key, err)
	}
	return out.Metadata, nil
}

// PresignGet returns a time-limited GET URL for one stored object.
func (s *Store) PresignGet(ctx context.Context, bucket, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %w", domain.ErrPresign, bucket, key, err)
	}
	return req.URL, nil
}
