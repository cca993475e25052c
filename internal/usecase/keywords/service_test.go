package keywords

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// --- Mocks ---

type mockResolver struct {
	slots      []domain.Slot
	err        error
	sessionIDs []string
}

func (m *mockResolver) ResolveSlots(_ context.Context, _, sessionID string) ([]domain.Slot, error) {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	return m.slots, m.err
}

// --- Tests ---

func TestFromSlots_ResolvedWinsOverEverything(t *testing.T) {
	slots := []domain.Slot{{
		Name:             "object",
		ResolvedValues:   []string{"dog", "puppy"},
		InterpretedValue: "doggo",
		OriginalValue:    "doggie",
	}}

	got := FromSlots(slots)
	want := []string{"dog", "puppy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromSlots = %v, want %v", got, want)
	}
}

func TestFromSlots_InterpretedFallback(t *testing.T) {
	slots := []domain.Slot{{Name: "object", InterpretedValue: "cat", OriginalValue: "kat"}}

	got := FromSlots(slots)
	want := []string{"cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromSlots = %v, want %v", got, want)
	}
}

func TestFromSlots_OriginalFallback(t *testing.T) {
	slots := []domain.Slot{{Name: "object", OriginalValue: "birb"}}

	got := FromSlots(slots)
	want := []string{"birb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromSlots = %v, want %v", got, want)
	}
}

func TestFromSlots_EmptySlotContributesNothing(t *testing.T) {
	slots := []domain.Slot{
		{Name: "color"},
		{Name: "object", InterpretedValue: "tree"},
	}

	got := FromSlots(slots)
	want := []string{"tree"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromSlots = %v, want %v", got, want)
	}
}

func TestFromSlots_NoSlots(t *testing.T) {
	if got := FromSlots(nil); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestExtract_ResolverErrorReturnsEmpty(t *testing.T) {
	resolver := &mockResolver{err: errors.New("bot unavailable")}
	svc := New(resolver, zap.NewNop())

	got := svc.Extract(context.Background(), "show me dogs")
	if len(got) != 0 {
		t.Errorf("expected empty keyword list on resolver failure, got %v", got)
	}
}

func TestExtract_FreshSessionPerCall(t *testing.T) {
	resolver := &mockResolver{slots: []domain.Slot{{Name: "object", InterpretedValue: "dog"}}}
	svc := New(resolver, zap.NewNop())

	svc.Extract(context.Background(), "dogs")
	svc.Extract(context.Background(), "dogs")

	if len(resolver.sessionIDs) != 2 {
		t.Fatalf("expected 2 resolver calls, got %d", len(resolver.sessionIDs))
	}
	if resolver.sessionIDs[0] == "" || resolver.sessionIDs[1] == "" {
		t.Error("expected non-empty session ids")
	}
	if resolver.sessionIDs[0] == resolver.sessionIDs[1] {
		t.Error("expected a fresh session id per call")
	}
}

func TestExtract_MultipleSlots(t *testing.T) {
	resolver := &mockResolver{slots: []domain.Slot{
		{Name: "color", ResolvedValues: []string{"black"}},
		{Name: "object", InterpretedValue: "cat"},
	}}
	svc := New(resolver, zap.NewNop())

	got := svc.Extract(context.Background(), "black cats")
	want := []string{"black", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}
