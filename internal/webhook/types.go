package webhook

import (
	"context"

	"github.com/f3stcharles/f3utils/internal/calendar"
	"github.com/f3stcharles/f3utils/internal/signup"
	"github.com/f3stcharles/f3utils/internal/slack"
)

// DialogOpener opens the signup modal for a single-use trigger identifier.
type DialogOpener interface {
	OpenView(ctx context.Context, triggerID string, view slack.ModalView) error
}

// SubmissionProcessor runs the side effects of a validated submission and
// reports their outcomes.
type SubmissionProcessor interface {
	Process(ctx context.Context, sub signup.Submission) signup.Report
}

// ScheduleSource reads the Q-signup calendar.
type ScheduleSource interface {
	Events(ctx context.Context, teamID, startDate, endDate string) ([]calendar.Entry, error)
}

// CalendarResponse is the JSON body of a calendar query.
type CalendarResponse struct {
	Code      int              `json:"code"`
	Status    string           `json:"status"`
	Responses []calendar.Entry `json:"responses"`
}

const (
	// SignatureHeader carries the Slack request signature.
	SignatureHeader = "X-Slack-Signature"

	// TimestampHeader carries the timestamp included in the signed payload.
	TimestampHeader = "X-Slack-Request-Timestamp"

	// MaxBodySize bounds inbound request bodies (1 MB).
	MaxBodySize = 1048576
)
