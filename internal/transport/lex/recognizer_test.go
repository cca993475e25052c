package lex

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	lexruntime "github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	lextypes "github.com/aws/aws-sdk-go-v2/service/lexruntimev2/types"
)

func responseWithSlots(slots map[string]lextypes.Slot) *lexruntime.RecognizeTextOutput {
	return &lexruntime.RecognizeTextOutput{
		SessionState: &lextypes.SessionState{
			Intent: &lextypes.Intent{Slots: slots},
		},
	}
}

func TestSlotsFromResponse_NilShapes(t *testing.T) {
	if got := slotsFromResponse(nil); got != nil {
		t.Errorf("expected nil for nil output, got %v", got)
	}
	if got := slotsFromResponse(&lexruntime.RecognizeTextOutput{}); got != nil {
		t.Errorf("expected nil for missing session state, got %v", got)
	}
	if got := slotsFromResponse(responseWithSlots(nil)); got != nil {
		t.Errorf("expected nil for missing slots, got %v", got)
	}
}

func TestSlotsFromResponse_AllValueCategories(t *testing.T) {
	out := responseWithSlots(map[string]lextypes.Slot{
		"object": {Value: &lextypes.Value{
			ResolvedValues:   []string{"dog", "puppy"},
			InterpretedValue: aws.String("doggo"),
			OriginalValue:    aws.String("doggie"),
		}},
	})

	got := slotsFromResponse(out)
	if len(got) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(got))
	}
	slot := got[0]
	if slot.Name != "object" {
		t.Errorf("name = %q, want %q", slot.Name, "object")
	}
	if !reflect.DeepEqual(slot.ResolvedValues, []string{"dog", "puppy"}) {
		t.Errorf("resolved = %v", slot.ResolvedValues)
	}
	if slot.InterpretedValue != "doggo" {
		t.Errorf("interpreted = %q", slot.InterpretedValue)
	}
	if slot.OriginalValue != "doggie" {
		t.Errorf("original = %q", slot.OriginalValue)
	}
}

func TestSlotsFromResponse_SortedByName(t *testing.T) {
	out := responseWithSlots(map[string]lextypes.Slot{
		"zeta":  {Value: &lextypes.Value{OriginalValue: aws.String("z")}},
		"alpha": {Value: &lextypes.Value{OriginalValue: aws.String("a")}},
		"mid":   {Value: &lextypes.Value{OriginalValue: aws.String("m")}},
	})

	got := slotsFromResponse(out)
	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("slot %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestSlotsFromResponse_SkipsSlotsWithoutValue(t *testing.T) {
	out := responseWithSlots(map[string]lextypes.Slot{
		"empty":  {},
		"object": {Value: &lextypes.Value{InterpretedValue: aws.String("cat")}},
	})

	got := slotsFromResponse(out)
	if len(got) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(got))
	}
	if got[0].Name != "object" {
		t.Errorf("name = %q, want %q", got[0].Name, "object")
	}
}
