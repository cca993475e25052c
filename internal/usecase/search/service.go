// Package search answers natural-language photo queries: keyword extraction,
// index match query, and result assembly.
package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	"github.com/kailas-cloud/photodex/internal/metrics"
)

// maxResults caps the hits requested from the index per query.
const maxResults = 10

// Service handles one search request end to end.
type Service struct {
	keywords KeywordExtractor
	index    Index
	presign  Presigner
	logger   *zap.Logger
}

// New creates a search service.
func New(keywords KeywordExtractor, index Index, presign Presigner, logger *zap.Logger) *Service {
	return &Service{keywords: keywords, index: index, presign: presign, logger: logger}
}

// Search extracts keywords from the query text and runs an OR-combined match
// query against the index. When extraction yields nothing, the raw text is
// used so the index query always has at least one term. An index failure is
// the only fatal error; result assembly recovers per hit.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	kws := s.keywords.Extract(ctx, query)
	if len(kws) == 0 {
		metrics.KeywordFallbacksTotal.Inc()
		s.logger.Info("no keywords extracted, falling back to raw text",
			zap.String("query", query),
		)
		kws = []string{query}
	} else {
		s.logger.Info("keywords extracted",
			zap.String("query", query),
			zap.Strings("keywords", kws),
		)
	}

	hits, err := s.index.Query(ctx, strings.Join(kws, " "), maxResults)
	if err != nil {
		return nil, fmt.Errorf("query photo index: %w", err)
	}

	results := s.assemble(ctx, hits)
	s.logger.Info("search completed",
		zap.Int("hits", len(hits)),
		zap.Int("results", len(results)),
	)
	return results, nil
}
