package search

import (
	"context"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// KeywordExtractor turns free text into search keywords.
type KeywordExtractor interface {
	Extract(ctx context.Context, text string) []string
}

// Index queries the photo index by keyword match.
type Index interface {
	Query(ctx context.Context, query string, limit int) ([]domain.PhotoRecord, error)
}

// Presigner mints time-limited access links for stored objects.
type Presigner interface {
	PresignGet(ctx context.Context, bucket, key string) (string, error)
}
