package search

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// --- Mocks ---

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
	lastLimit int
}

func (m *mockIndex) Query(_ context.Context, query string, limit int) ([]domain.PhotoRecord, error) {
	m.lastQuery = query
	m.lastLimit = limit
	return m.hits, m.err
}

type mockPresigner struct {
	failKeys map[string]bool
	calls    int
}

func (m *mockPresigner) PresignGet(_ context.Context, bucket, key string) (string, error) {
	m.calls++
	if m.failKeys[key] {
		return "", domain.ErrPresign
	}
	return "https://signed.example.com/" + bucket + "/" + key, nil
}

func newTestService(ex *mockExtractor, idx *mockIndex, ps *mockPresigner) *Service {
	return New(ex, idx, ps, zap.NewNop())
}

func hit(bucket, key string, labels ...string) domain.PhotoRecord {
	return domain.PhotoRecord{Bucket: bucket, ObjectKey: key, Labels: labels}
}

// --- Tests ---

func TestSearch_JoinsKeywords(t *testing.T) {
	idx := &mockIndex{}
	svc := newTestService(&mockExtractor{keywords: []string{"black", "cat"}}, idx, &mockPresigner{})

	if _, err := svc.Search(context.Background(), "show me black cats"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.lastQuery != "black cat" {
		t.Errorf("query = %q, want %q", idx.lastQuery, "black cat")
	}
	if idx.lastLimit != 10 {
		t.Errorf("limit = %d, want 10", idx.lastLimit)
	}
}

func TestSearch_RawTextFallback(t *testing.T) {
	idx := &mockIndex{hits: []domain.PhotoRecord{hit("b", "k1", "Dog")}}
	svc := newTestService(&mockExtractor{}, idx, &mockPresigner{})

	results, err := svc.Search(context.Background(), "dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.lastQuery != "dog" {
		t.Errorf("query = %q, want raw text %q", idx.lastQuery, "dog")
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestSearch_IndexFailureIsFatal(t *testing.T) {
	idx := &mockIndex{err: domain.ErrIndexQuery}
	svc := newTestService(&mockExtractor{keywords: []string{"dog"}}, idx, &mockPresigner{})

	_, err := svc.Search(context.Background(), "dog")
	if !errors.Is(err, domain.ErrIndexQuery) {
		t.Fatalf("expected ErrIndexQuery, got %v", err)
	}
}

func TestAssemble_DedupAndValidity(t *testing.T) {
	hits := []domain.PhotoRecord{
		hit("b", "k1", "Dog"),
		hit("b", "k1", "Dog"),
		hit("", "k2", "Cat"),
		hit("b", "k3", "Bird"),
	}
	ps := &mockPresigner{}
	svc := newTestService(&mockExtractor{}, &mockIndex{}, ps)

	results := svc.assemble(context.Background(), hits)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].URL != "https://signed.example.com/b/k1" {
		t.Errorf("unexpected first url %q", results[0].URL)
	}
	if results[1].URL != "https://signed.example.com/b/k3" {
		t.Errorf("unexpected second url %q", results[1].URL)
	}
	if ps.calls != 2 {
		t.Errorf("expected 2 presign calls, got %d", ps.calls)
	}
}

func TestAssemble_PresignFailureDropsOnlyThatHit(t *testing.T) {
	hits := []domain.PhotoRecord{
		hit("b", "k1", "Dog"),
		hit("b", "k2", "Cat"),
		hit("b", "k3", "Bird"),
	}
	ps := &mockPresigner{failKeys: map[string]bool{"k2": true}}
	svc := newTestService(&mockExtractor{}, &mockIndex{}, ps)

	results := svc.assemble(context.Background(), hits)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.URL == "" {
			t.Error("expected non-empty url")
		}
	}
}

func TestAssemble_KeepsRelevanceOrderAndLabels(t *testing.T) {
	hits := []domain.PhotoRecord{
		hit("b", "k2", "Cat", "Animal"),
		hit("b", "k1", "Dog"),
	}
	svc := newTestService(&mockExtractor{}, &mockIndex{}, &mockPresigner{})

	results := svc.assemble(context.Background(), hits)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if len(results[0].Labels) != 2 || results[0].Labels[0] != "Cat" {
		t.Errorf("unexpected labels on first result: %v", results[0].Labels)
	}
}
