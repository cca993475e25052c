// Package keywords turns free-text queries into search keywords via the
// intent service's slot extraction.
package keywords

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	"github.com/kailas-cloud/photodex/internal/metrics"
)

// Service extracts keywords from query text.
type Service struct {
	resolver SlotResolver
	logger   *zap.Logger
}

// New creates a keyword extraction service.
func New(resolver SlotResolver, logger *zap.Logger) *Service {
	return &Service{resolver: resolver, logger: logger}
}

// Extract converts free text into an ordered keyword list. Every call uses a
// fresh session id so unrelated requests never share bot context. A resolver
// failure degrades to an empty list: keyword extraction has a safe fallback
// (raw-text search) at the caller, so it never surfaces an error.
func (s *Service) Extract(ctx context.Context, text string) []string {
	sessionID := uuid.NewString()

	slots, err := s.resolver.ResolveSlots(ctx, text, sessionID)
	if err != nil {
		metrics.IntentErrorsTotal.Inc()
		s.logger.Warn("intent extraction failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil
	}

	return FromSlots(slots)
}

// FromSlots applies the per-slot value precedence: all resolved values
// (synonym-normalized), else the single interpreted value, else the single
// original value, else nothing for that slot.
func FromSlots(slots []domain.Slot) []string {
	var keywords []string
	for _, slot := range slots {
		switch {
		case len(slot.ResolvedValues) > 0:
			keywords = append(keywords, slot.ResolvedValues...)
		case slot.InterpretedValue != "":
			keywords = append(keywords, slot.InterpretedValue)
		case slot.OriginalValue != "":
			keywords = append(keywords, slot.OriginalValue)
		}
	}
	return keywords
}
