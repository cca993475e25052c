package lambda

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	indexinguc "github.com/kailas-cloud/photodex/internal/usecase/indexing"
)

// IndexerResponse mirrors the function result contract of the indexer.
type IndexerResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// IndexerHandler consumes object-store upload events.
type IndexerHandler struct {
	indexing *indexinguc.Service
	logger   *zap.Logger
}

// NewIndexerHandler creates the indexer entrypoint handler.
func NewIndexerHandler(indexing *indexinguc.Service, logger *zap.Logger) *IndexerHandler {
	return &IndexerHandler{indexing: indexing, logger: logger}
}

// Handle processes one upload event. Only the first record is consumed;
// multi-record batches are not iterated. Any failure returns to the runtime
// unhandled so the platform's at-least-once delivery can redeliver the event.
func (h *IndexerHandler) Handle(ctx context.Context, event events.S3Event) (IndexerResponse, error) {
	if len(event.Records) == 0 {
		return IndexerResponse{}, errors.New("upload event carries no records")
	}
	if len(event.Records) > 1 {
		h.logger.Warn("multi-record upload event, processing first record only",
			zap.Int("dropped_records", len(event.Records)-1),
		)
	}

	record := event.Records[0]
	up := domain.Upload{
		Bucket:    record.S3.Bucket.Name,
		Key:       record.S3.Object.Key,
		EventTime: record.EventTime.UTC().Format(time.RFC3339),
	}

	if _, err := h.indexing.Index(ctx, up); err != nil {
		return IndexerResponse{}, err
	}

	return IndexerResponse{
		StatusCode: http.StatusOK,
		Body:       `"Indexed successfully"`,
	}, nil
}
