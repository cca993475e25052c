package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	"github.com/kailas-cloud/photodex/internal/metrics"
)

// assemble maps raw hits to presentable results in index relevance order.
// Hits missing a bucket or key are skipped, later duplicates of an object
// key are dropped, and a presign failure drops only that hit: one bad object
// must not fail the whole response.
func (s *Service) assemble(ctx context.Context, hits []domain.PhotoRecord) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))

	for _, hit := range hits {
		if hit.Bucket == "" || hit.ObjectKey == "" {
			s.logger.Warn("skipping hit without bucket or key",
				zap.String("bucket", hit.Bucket),
				zap.String("key", hit.ObjectKey),
			)
			continue
		}
		if _, dup := seen[hit.ObjectKey]; dup {
			continue
		}
		seen[hit.ObjectKey] = struct{}{}

		url, err := s.presign.PresignGet(ctx, hit.Bucket, hit.ObjectKey)
		if err != nil {
			metrics.PresignFailuresTotal.Inc()
			s.logger.Warn("presign failed, dropping hit",
				zap.String("bucket", hit.Bucket),
				zap.String("key", hit.ObjectKey),
				zap.Error(err),
			)
			continue
		}

		results = append(results, domain.SearchResult{URL: url, Labels: hit.Labels})
	}

	return results
}
