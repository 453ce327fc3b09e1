package slack

import (
	"net/url"
	"testing"
)

func TestClassify_FlatTriggerID(t *testing.T) {
	form := url.Values{
		"trigger_id": {"123.456.abc"},
		"command":    {"/fngbot"},
		"user_id":    {"U123"},
	}

	got := Classify(form)
	if got.Kind != KindSlashCommand {
		t.Fatalf("Kind = %v, want KindSlashCommand", got.Kind)
	}
	if got.TriggerID != "123.456.abc" {
		t.Errorf("TriggerID = %q, want 123.456.abc", got.TriggerID)
	}
}

func TestClassify_FlatTriggerIDWinsOverPayload(t *testing.T) {
	// A non-empty trigger_id routes to DisplayForm regardless of other keys.
	form := url.Values{
		"trigger_id": {"999.zzz"},
		"payload":    {`{"type":"view_submission","view":{}}`},
	}

	got := Classify(form)
	if got.Kind != KindSlashCommand || got.TriggerID != "999.zzz" {
		t.Errorf("got %+v, want slash command with trigger 999.zzz", got)
	}
}

func TestClassify_BlockActions(t *testing.T) {
	form := url.Values{
		"payload": {`{"type":"block_actions","trigger_id":"456.def"}`},
	}

	got := Classify(form)
	if got.Kind != KindBlockAction {
		t.Fatalf("Kind = %v, want KindBlockAction", got.Kind)
	}
	if got.TriggerID != "456.def" {
		t.Errorf("TriggerID = %q, want 456.def", got.TriggerID)
	}
}

func TestClassify_BlockActionsWithoutTrigger(t *testing.T) {
	form := url.Values{
		"payload": {`{"type":"block_actions"}`},
	}

	if got := Classify(form); got.Kind != KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", got.Kind)
	}
}

func TestClassify_ViewSubmission(t *testing.T) {
	form := url.Values{
		"payload": {`{"type":"view_submission","view":{"blocks":[{"block_id":"b1"}]}}`},
	}

	got := Classify(form)
	if got.Kind != KindViewSubmission {
		t.Fatalf("Kind = %v, want KindViewSubmission", got.Kind)
	}
	if got.View == nil || len(got.View.Blocks) != 1 || got.View.Blocks[0].BlockID != "b1" {
		t.Errorf("View = %+v, want one block b1", got.View)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"empty form", url.Values{}},
		{"empty trigger_id", url.Values{"trigger_id": {""}}},
		{"unknown payload type", url.Values{"payload": {`{"type":"shortcut"}`}}},
		{"unparsable payload", url.Values{"payload": {`{nope`}}},
		{"unrelated keys only", url.Values{"team_id": {"T123"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.form); got.Kind != KindUnknown {
				t.Errorf("Kind = %v, want KindUnknown", got.Kind)
			}
		})
	}
}
