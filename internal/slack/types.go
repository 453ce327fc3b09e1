// Package slack implements the subset of the Slack platform surface f3utils
// uses: request signature verification, interaction classification, view
// state extraction, and the Web API calls the bot makes.
package slack

import (
	"encoding/json"
	"net/url"
)

// interactionPayload is the JSON document Slack nests under the "payload"
// form field for block actions and view submissions.
type interactionPayload struct {
	Type      string `json:"type"`
	TriggerID string `json:"trigger_id"`
	View      *View  `json:"view"`
}

// View is the structured description of a modal: block definitions plus a
// separate state map of submitted values. Blocks carry no values; the state
// map carries no labels.
type View struct {
	Blocks []Block `json:"blocks"`
	State  *State  `json:"state"`
}

// Block is one display definition inside a view.
type Block struct {
	BlockID string   `json:"block_id"`
	Label   *Label   `json:"label"`
	Element *Element `json:"element"`
}

// Label is a block's human-readable field label.
type Label struct {
	Text string `json:"text"`
}

// Element is a block's input element descriptor.
type Element struct {
	ActionID string `json:"action_id"`
}

// State holds submitted values keyed by block id, then action id.
type State struct {
	Values map[string]map[string]StateValue `json:"values"`
}

// StateValue is one submitted leaf value.
type StateValue struct {
	Value string `json:"value"`
}

// Kind identifies which interaction shape an inbound request carries.
// The zero value is the unrecognized arm.
type Kind int

const (
	// KindUnknown is any shape the classifier does not recognize.
	KindUnknown Kind = iota

	// KindSlashCommand is a slash-command invocation: a flat form body
	// carrying trigger_id directly.
	KindSlashCommand

	// KindBlockAction is a button press delivering a block_actions payload
	// with the trigger_id inside the JSON document.
	KindBlockAction

	// KindViewSubmission is a submitted modal delivering the view document.
	KindViewSubmission
)

// Interaction is the classified form of one inbound request.
type Interaction struct {
	Kind      Kind
	TriggerID string
	View      *View
}

const (
	typeBlockActions   = "block_actions"
	typeViewSubmission = "view_submission"
)

// Classify decides which of the interaction shapes a decoded request body
// carries. All three arrive on the same endpoint:
//
//  1. a slash command puts trigger_id directly in the form data;
//  2. a button press puts a block_actions JSON document under "payload",
//     with the trigger_id inside it;
//  3. a submitted modal puts a view_submission document under "payload".
//
// Anything else, including an unparsable payload, is KindUnknown.
func Classify(form url.Values) Interaction {
	if id := form.Get("trigger_id"); id != "" {
		return Interaction{Kind: KindSlashCommand, TriggerID: id}
	}

	raw := form.Get("payload")
	if raw == "" {
		return Interaction{Kind: KindUnknown}
	}

	var p interactionPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Interaction{Kind: KindUnknown}
	}

	switch p.Type {
	case typeBlockActions:
		if p.TriggerID != "" {
			return Interaction{Kind: KindBlockAction, TriggerID: p.TriggerID}
		}
	case typeViewSubmission:
		return Interaction{Kind: KindViewSubmission, View: p.View}
	}
	return Interaction{Kind: KindUnknown}
}
