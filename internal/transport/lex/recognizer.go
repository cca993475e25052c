// Package lex adapts the Lex V2 runtime for slot extraction.
package lex

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	lexruntime "github.com/aws/aws-sdk-go-v2/service/lexruntimev2"

	"github.com/kailas-cloud/photodex/internal/domain"
)

// Config holds the bot coordinates of one recognizer.
type Config struct {
	BotID      string
	BotAliasID string
	LocaleID   string
}

// Recognizer resolves slots from free text via one configured bot.
type Recognizer struct {
	client *lexruntime.Client
	cfg    Config
}

// New creates a slot recognizer.
func New(client *lexruntime.Client, cfg Config) *Recognizer {
	return &Recognizer{client: client, cfg: cfg}
}

// ResolveSlots sends the text to the bot under the given session and returns
// the recognized slots as typed values.
func (r *Recognizer) ResolveSlots(ctx context.Context, text, sessionID string) ([]domain.Slot, error) {
	out, err := r.client.RecognizeText(ctx, &lexruntime.RecognizeTextInput{
		BotId:      aws.String(r.cfg.BotID),
		BotAliasId: aws.String(r.cfg.BotAliasID),
		LocaleId:   aws.String(r.cfg.LocaleID),
		SessionId:  aws.String(sessionID),
		Text:       aws.String(text),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIntentService, err)
	}
	return slotsFromResponse(out), nil
}

// slotsFromResponse flattens the nested session state into typed slots.
// The service returns slots as an unordered map; names are sorted so
// downstream keyword order is deterministic.
func slotsFromResponse(out *lexruntime.RecognizeTextOutput) []domain.Slot {
	if out == nil || out.SessionState == nil || out.SessionState.Intent == nil {
		return nil
	}
	raw := out.SessionState.Intent.Slots
	if len(raw) == 0 {
		return nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	slots := make([]domain.Slot, 0, len(names))
	for _, name := range names {
		value := raw[name].Value
		if value == nil {
			continue
		}
		slots = append(slots, domain.Slot{
			Name:             name,
			ResolvedValues:   value.ResolvedValues,
			InterpretedValue: aws.ToString(value.InterpretedValue),
			OriginalValue:    aws.ToString(value.OriginalValue),
		})
	}
	return slots
}
