package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	searchuc "github.com/kailas-cloud/photodex/internal/usecase/search"
)

// SearcherHandler answers API Gateway query events.
type SearcherHandler struct {
	search *searchuc.Service
	logger *zap.Logger
}

// NewSearcherHandler creates the searcher entrypoint handler.
func NewSearcherHandler(search *searchuc.Service, logger *zap.Logger) *SearcherHandler {
	return &SearcherHandler{search: search, logger: logger}
}

type searchResponseBody struct {
	Results []domain.SearchResult `json:"results"`
}

// Handle processes one HTTP query event. Upstream error text never reaches
// the client: failures map to a short generic message.
func (h *SearcherHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := event.QueryStringParameters
	if len(params) == 0 {
		h.logger.Warn("no query parameters in event")
		return response(http.StatusBadRequest, "No query parameters found. Please provide '?q=keywords'"), nil
	}

	text := params["q"]
	if text == "" {
		h.logger.Warn("missing 'q' parameter")
		return response(http.StatusBadRequest, "Missing 'q' parameter"), nil
	}

	h.logger.Info("processing search query", zap.String("query", text))

	results, err := h.search.Search(ctx, text)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		return response(http.StatusInternalServerError, "Internal Search Error"), nil
	}

	return response(http.StatusOK, searchResponseBody{Results: results}), nil
}
