package signup

// Outcome is the success/failure result of one side effect, independent of
// its siblings.
type Outcome int

const (
	OutcomeFailure Outcome = iota
	OutcomeSuccess
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// Report aggregates the outcomes of the three orchestrated operations.
type Report struct {
	Enrollment   Outcome
	Invitation   Outcome
	Notification Outcome
}

// Lines renders the user-facing status lines in fixed order: enrollment,
// invitation, notification.
func (r Report) Lines() []string {
	return []string{
		enrollmentLine(r.Enrollment),
		invitationLine(r.Invitation),
		notificationLine(r.Notification),
	}
}

func enrollmentLine(o Outcome) string {
	if o == OutcomeSuccess {
		return "✅ Success adding user to the mailing list!"
	}
	return "🛑 Could not add user to the mailing list."
}

func invitationLine(o Outcome) string {
	if o == OutcomeSuccess {
		return "✅ Success inviting user to Slack!"
	}
	return "🛑 I could not invite the user to Slack."
}

func notificationLine(o Outcome) string {
	if o == OutcomeSuccess {
		return "✅ Success notifying the welcome team!"
	}
	return "🛑 Could not notify the welcome team."
}
