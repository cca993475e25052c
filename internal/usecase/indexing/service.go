// Package indexing handles one upload notification: label the photo and
// write a single index document.
package indexing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	"github.com/kailas-cloud/photodex/internal/metrics"
)

// Service indexes uploaded photos.
type Service struct {
	labels LabelSource
	index  Writer
	logger *zap.Logger
}

// New creates an indexing service.
func New(labels LabelSource, index Writer, logger *zap.Logger) *Service {
	return &Service{labels: labels, index: index, logger: logger}
}

// Index merges the labels for the upload and writes one immutable record
// under a freshly generated id, which it returns. Ids are not derived from
// the object key: duplicate deliveries of the same upload produce duplicate
// documents (append-only history). Every failure is returned to the caller
// so the hosting platform's redelivery can retry; no partial document is
// ever written.
func (s *Service) Index(ctx context.Context, up domain.Upload) (string, error) {
	merged, err := s.labels.Merged(ctx, up.Bucket, up.Key)
	if err != nil {
		metrics.PhotosIndexedTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("merge labels for %s/%s: %w", up.Bucket, up.Key, err)
	}

	rec := domain.PhotoRecord{
		ObjectKey:        up.Key,
		Bucket:           up.Bucket,
		CreatedTimestamp: up.EventTime,
		Labels:           merged,
	}

	id := uuid.NewString()
	if err := s.index.Index(ctx, id, rec); err != nil {
		metrics.PhotosIndexedTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("index %s/%s: %w", up.Bucket, up.Key, err)
	}

	metrics.PhotosIndexedTotal.WithLabelValues("success").Inc()
	s.logger.Info("photo indexed",
		zap.String("bucket", up.Bucket),
		zap.String("key", up.Key),
		zap.String("doc_id", id),
		zap.Int("label_count", len(merged)),
	)
	return id, nil
}
