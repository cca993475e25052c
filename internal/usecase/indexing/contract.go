package indexing

import (
	"context"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// LabelSource produces the merged label list for an uploaded object.
type LabelSource interface {
	Merged(ctx context.Context, bucket, key string) ([]string, error)
}

// Writer persists photo records into the search index.
type Writer interface {
	Index(ctx context.Context, id string, rec domain.PhotoRecord) error
}
