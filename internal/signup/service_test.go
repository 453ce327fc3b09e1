package signup

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/f3stcharles/f3utils/internal/mailchimp"
	"github.com/f3stcharles/f3utils/internal/signup/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSubmission() Submission {
	return Submission{
		F3Name:       "Slim",
		HospitalName: "Mercy General",
		Email:        "slim@example.org",
		CellPhone:    "5551234567",
	}
}

func TestProcess_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := mocks.NewMockListSubscriber(ctrl)
	invites := mocks.NewMockInviteSender(ctrl)
	notifier := mocks.NewMockTeamNotifier(ctrl)

	list.EXPECT().Subscribe(gomock.Any(), mailchimp.Member{
		EmailAddress: "slim@example.org",
		FullName:     "Mercy General",
		Phone:        "5551234567",
		F3Name:       "Slim",
	}).Return(nil)
	invites.EXPECT().SendInvite("Slim", "Mercy General", "slim@example.org").Return(nil)

	var welcomeText string
	notifier.EXPECT().PostMessage(gomock.Any(), "C0123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			welcomeText = text
			return nil
		})

	s := New(list, invites, notifier, "C0123", testLogger())
	report := s.Process(context.Background(), testSubmission())

	assert.Equal(t, OutcomeSuccess, report.Enrollment)
	assert.Equal(t, OutcomeSuccess, report.Invitation)
	assert.Equal(t, OutcomeSuccess, report.Notification)

	// The welcome message summarizes the contact and the first two outcomes.
	assert.Contains(t, welcomeText, "F3 Name: Slim")
	assert.Contains(t, welcomeText, "Hospital Name: Mercy General")
	assert.Contains(t, welcomeText, "Email Address: slim@example.org")
	assert.Contains(t, welcomeText, "Cell Phone: 5551234567")
	assert.Contains(t, welcomeText, "✅ Success inviting user to Slack!")
	assert.Contains(t, welcomeText, "✅ Success adding user to the mailing list!")
}

func TestProcess_EnrollmentFailureDoesNotGateOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := mocks.NewMockListSubscriber(ctrl)
	invites := mocks.NewMockInviteSender(ctrl)
	notifier := mocks.NewMockTeamNotifier(ctrl)

	list.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(errors.New("api down"))
	invites.EXPECT().SendInvite("Slim", "Mercy General", "slim@example.org").Return(nil)

	var welcomeText string
	notifier.EXPECT().PostMessage(gomock.Any(), "C0123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			welcomeText = text
			return nil
		})

	s := New(list, invites, notifier, "C0123", testLogger())
	report := s.Process(context.Background(), testSubmission())

	assert.Equal(t, OutcomeFailure, report.Enrollment)
	assert.Equal(t, OutcomeSuccess, report.Invitation)
	assert.Equal(t, OutcomeSuccess, report.Notification)

	lines := report.Lines()
	assert.Len(t, lines, 3)
	assert.Equal(t, "🛑 Could not add user to the mailing list.", lines[0])
	assert.Equal(t, "✅ Success inviting user to Slack!", lines[1])
	assert.Equal(t, "✅ Success notifying the welcome team!", lines[2])

	// The notification reflects the enrollment failure.
	assert.Contains(t, welcomeText, "🛑 Could not add user to the mailing list.")
	assert.Contains(t, welcomeText, "✅ Success inviting user to Slack!")
}

func TestProcess_NotificationFailureIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := mocks.NewMockListSubscriber(ctrl)
	invites := mocks.NewMockInviteSender(ctrl)
	notifier := mocks.NewMockTeamNotifier(ctrl)

	list.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil)
	invites.EXPECT().SendInvite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().PostMessage(gomock.Any(), "C0123", gomock.Any()).Return(errors.New("channel gone"))

	s := New(list, invites, notifier, "C0123", testLogger())
	report := s.Process(context.Background(), testSubmission())

	// Notification failure does not retroactively alter the first two.
	assert.Equal(t, OutcomeSuccess, report.Enrollment)
	assert.Equal(t, OutcomeSuccess, report.Invitation)
	assert.Equal(t, OutcomeFailure, report.Notification)
}

func TestProcess_AllFailStillReturnsFullReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := mocks.NewMockListSubscriber(ctrl)
	invites := mocks.NewMockInviteSender(ctrl)
	notifier := mocks.NewMockTeamNotifier(ctrl)

	list.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(errors.New("down"))
	invites.EXPECT().SendInvite(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("down"))
	notifier.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("down"))

	s := New(list, invites, notifier, "C0123", testLogger())
	report := s.Process(context.Background(), testSubmission())

	for i, line := range report.Lines() {
		assert.True(t, strings.HasPrefix(line, "🛑"), "line %d should report failure: %q", i, line)
	}
}
