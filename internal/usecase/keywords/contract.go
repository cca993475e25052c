package keywords

import (
	"context"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// SlotResolver extracts typed slots from free text.
type SlotResolver interface {
	ResolveSlots(ctx context.Context, text, sessionID string) ([]domain.Slot, error)
}
