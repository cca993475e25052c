// Package chi hosts the local HTTP surface of the search pipeline.
package chi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	searchuc "github.com/kailas-cloud/photodex/internal/usecase/search"
)

// Server exposes the searcher over plain HTTP for local development.
// The response contract mirrors the deployed gateway endpoint.
type Server struct {
	search *searchuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, logger: logger}
}

type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, "Missing 'q' parameter")
		return
	}

	results, err := s.search.Search(r.Context(), text)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, "Internal Search Error")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// Healthz reports liveness.
func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
