package slack

import "strings"

// Labels of the four signup fields. The modal definition and the submission
// handler must agree on these exactly; extraction matches label text.
const (
	LabelF3Name       = "F3 Name"
	LabelHospitalName = "Hospital Name"
	LabelEmailAddress = "Email Address"
	LabelCellPhone    = "Cell Phone"
)

// TextObject is a Block Kit text composition object.
type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// InputElement is a Block Kit input element.
type InputElement struct {
	Type             string `json:"type"`
	IsDecimalAllowed *bool  `json:"is_decimal_allowed,omitempty"`
	ActionID         string `json:"action_id,omitempty"`
}

// ModalBlock is one block of a modal definition.
type ModalBlock struct {
	Type    string        `json:"type"`
	Element *InputElement `json:"element,omitempty"`
	Label   *TextObject   `json:"label,omitempty"`
	Text    *TextObject   `json:"text,omitempty"`
}

// ModalView is a modal dialog definition.
type ModalView struct {
	Type   string       `json:"type"`
	Title  TextObject   `json:"title"`
	Submit *TextObject  `json:"submit,omitempty"`
	Blocks []ModalBlock `json:"blocks"`
}

// UpdateResponse closes out a view submission by swapping the open modal.
type UpdateResponse struct {
	ResponseAction string    `json:"response_action"`
	View           ModalView `json:"view"`
}

// SignupModal returns the four-field FNG signup dialog.
func SignupModal() ModalView {
	noDecimals := false
	return ModalView{
		Type:   "modal",
		Title:  TextObject{Type: "plain_text", Text: "FNG Bot", Emoji: true},
		Submit: &TextObject{Type: "plain_text", Text: "Invite!", Emoji: true},
		Blocks: []ModalBlock{
			{
				Type:    "input",
				Element: &InputElement{Type: "plain_text_input"},
				Label:   &TextObject{Type: "plain_text", Text: LabelF3Name},
			},
			{
				Type:    "input",
				Element: &InputElement{Type: "plain_text_input"},
				Label:   &TextObject{Type: "plain_text", Text: LabelHospitalName},
			},
			{
				Type:    "input",
				Element: &InputElement{Type: "email_text_input"},
				Label:   &TextObject{Type: "plain_text", Text: LabelEmailAddress},
			},
			{
				Type: "input",
				Element: &InputElement{
					Type:             "number_input",
					IsDecimalAllowed: &noDecimals,
					ActionID:         "number_input-action",
				},
				Label: &TextObject{Type: "plain_text", Text: LabelCellPhone},
			},
		},
	}
}

// StatusModal returns the update response shown after a submission has been
// processed, with one line per orchestrated operation.
func StatusModal(lines []string) UpdateResponse {
	text := "Thanks for using FNG Bot!\n*Status Report*:\n\n✅ I am a robot 🤖!\n\n" +
		strings.Join(lines, "\n\n") + "\n"

	return UpdateResponse{
		ResponseAction: "update",
		View: ModalView{
			Type:  "modal",
			Title: TextObject{Type: "plain_text", Text: "Status"},
			Blocks: []ModalBlock{
				{
					Type: "section",
					Text: &TextObject{Type: "mrkdwn", Text: text},
				},
			},
		},
	}
}
