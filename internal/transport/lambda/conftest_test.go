package lambda

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
	indexinguc "github.com/kailas-cloud/photodex/internal/usecase/indexing"
	searchuc "github.com/kailas-cloud/photodex/internal/usecase/search"
)

// --- Search pipeline mocks ---

type mockExtractor struct {
	keywords []string
}

func (m *mockExtractor) Extract(_ context.Context, _ string) []string {
	return m.keywords
}

type mockIndex struct {
	hits      []domain.PhotoRecord
	err       error
	lastQuery string
}

func (m *mockIndex) Query(_ context.Context, query string, _ int) ([]domain.PhotoRecord, error) {
	m.lastQuery = query
	return m.hits, m.err
}

type mockPresigner struct {
	failKeys map[string]bool
}

func (m *mockPresigner) PresignGet(_ context.Context, bucket, key string) (string, error) {
	if m.failKeys[key] {
		return "", domain.ErrPresign
	}
	return "https://signed.example.com/" + bucket + "/" + key, nil
}

func newSearcherHandler(t *testing.T, ex *mockExtractor, idx *mockIndex, ps *mockPresigner) *SearcherHandler {
	t.Helper()
	svc := searchuc.New(ex, idx, ps, zap.NewNop())
	return NewSearcherHandler(svc, zap.NewNop())
}

// --- Indexing pipeline mocks ---

type mockLabels struct {
	labels []string
	err    error
}

func (m *mockLabels) Merged(_ context.Context, _, _ string) ([]string, error) {
	return m.labels, m.err
}

type mockWriter struct {
	err     error
	lastRec domain.PhotoRecord
	calls   int
}

func (m *mockWriter) Index(_ context.Context, _ string, rec domain.PhotoRecord) error {
	m.calls++
	m.lastRec = rec
	return m.err
}

func newIndexerHandler(t *testing.T, labels *mockLabels, writer *mockWriter) *IndexerHandler {
	t.Helper()
	svc := indexinguc.New(labels, writer, zap.NewNop())
	return NewIndexerHandler(svc, zap.NewNop())
}
