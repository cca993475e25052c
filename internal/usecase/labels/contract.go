package labels

import "context"

// Detector is the automatic image-labeling capability.
type Detector interface {
	DetectLabels(ctx context.Context, bucket, key string, maxLabels int) ([]string, error)
}

// MetadataReader reads object metadata from the object store.
type MetadataReader interface {
	ObjectMetadata(ctx context.Context, bucket, key string) (map[string]string, error)
}
