// Package labels merges operator-curated and machine-detected labels for an
// uploaded photo.
package labels

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// maxDetectedLabels caps the labels requested per image.
const maxDetectedLabels = 10

// metadataField is the object-metadata key carrying the comma-separated
// operator labels.
const metadataField = "customlabels"

// Source produces label lists from the two upstream providers. Both
// providers are required: either one failing fails the whole operation.
type Source struct {
	detect Detector
	meta   MetadataReader
	logger *zap.Logger
}

// New creates a label source.
func New(detect Detector, meta MetadataReader, logger *zap.Logger) *Source {
	return &Source{detect: detect, meta: meta, logger: logger}
}

// Detected returns the automatically detected labels in the provider's
// ranking order, at most maxDetectedLabels of them.
func (s *Source) Detected(ctx context.Context, bucket, key string) ([]string, error) {
	names, err := s.detect.DetectLabels(ctx, bucket, key, maxDetectedLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamLabeling, err)
	}
	return names, nil
}

// Custom returns the operator labels from the object metadata. A missing or
// empty metadata field yields an empty list, not an error.
func (s *Source) Custom(ctx context.Context, bucket, key string) ([]string, error) {
	meta, err := s.meta.ObjectMetadata(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamMetadata, err)
	}
	return splitCustomLabels(meta[metadataField]), nil
}

// Merged returns custom labels followed by detected labels when custom
// labels exist, otherwise just the detected labels. Operator-curated labels
// rank ahead of machine-inferred ones for order-respecting consumers.
// No de-duplication: a label present in both sources appears twice.
func (s *Source) Merged(ctx context.Context, bucket, key string) ([]string, error) {
	custom, err := s.Custom(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	detected, err := s.Detected(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	if len(custom) == 0 {
		return detected, nil
	}

	merged := make([]string, 0, len(custom)+len(detected))
	merged = append(merged, custom...)
	merged = append(merged, detected...)

	s.logger.Debug("merged labels",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Strings("labels", merged),
	)
	return merged, nil
}

// splitCustomLabels parses the comma-separated metadata field, trimming
// surrounding whitespace on each piece.
func splitCustomLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
